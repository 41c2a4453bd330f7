package catalog

import (
	"net/http"
	"net/url"
	"slotbook/infras/otel"
	"slotbook/internal/domains/catalog/service"
	"slotbook/shared/constant"
	"slotbook/shared/failure"
	"slotbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/resources", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetResources)
		routerGroup.Get("/{name}", handler.GetResourceByName)
	})
}

// GetResources lists the bookable resources with their priced slots.
// @Summary Get all resources
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.GetResourcesResponse] "List of resources"
// @Failure 500 {object} response.Error
// @Router /v1/resources [get]
func (handler *Handler) GetResources(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResources")
	defer scope.End()

	resources, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resources")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, resources)
}

// GetResourceByName retrieves one resource. Names may contain spaces, so the
// path segment is unescaped before lookup.
// @Summary Get a resource by name
// @Tags Catalog
// @Produce json
// @Param name path string true "Resource name"
// @Success 200 {object} response.Data[dto.ResourceResponse] "Resource details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/resources/{name} [get]
func (handler *Handler) GetResourceByName(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResourceByName")
	defer scope.End()

	name, err := url.PathUnescape(chi.URLParam(r, constant.RequestParamName))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	resource, err := handler.service.Get(ctx, name)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("resource", name).Msg("failed to get resource")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, resource)
}
