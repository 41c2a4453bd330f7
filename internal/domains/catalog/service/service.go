package service

import (
	"context"
	"errors"
	"fmt"
	"slotbook/infras/otel"
	"slotbook/internal/domains/catalog/model"
	"slotbook/internal/domains/catalog/model/dto"
	"slotbook/internal/domains/catalog/repository"
	"slotbook/shared/constant"
	"slotbook/shared/failure"

	"github.com/rs/zerolog/log"
)

type Catalog interface {
	GetAll(ctx context.Context) (dto.GetResourcesResponse, error)
	Get(ctx context.Context, name string) (dto.ResourceResponse, error)
}

type serviceImpl struct {
	repo repository.Catalog
	otel otel.Otel
}

func New(repo repository.Catalog, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetResourcesResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog.GetAll")
	defer scope.End()

	res.FromModels(s.repo.Resources())
	scope.SetAttribute("catalog.resources", res.TotalData)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, name string) (res dto.ResourceResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Catalog.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	resource, err := s.repo.GetResource(name)
	if err != nil {
		if errors.Is(err, model.ErrUnknownResource) {
			return res, failure.NotFound("resource not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("resource", name).Msg("failed to get resource")

		return res, fmt.Errorf("failed to get resource: %w", err)
	}

	res.FromModel(resource)

	return res, nil
}
