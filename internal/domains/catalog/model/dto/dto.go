package dto

import "slotbook/internal/domains/catalog/model"

type SlotResponse struct {
	Start        string  `json:"start"`
	End          string  `json:"end"`
	PricePerHour float64 `json:"price_per_hour"`
}

type ResourceResponse struct {
	Name  string         `json:"name"`
	Slots []SlotResponse `json:"slots"`
}

func (r *ResourceResponse) FromModel(model model.Resource) {
	r.Name = model.Name
	r.Slots = make([]SlotResponse, len(model.Slots))

	for i, slot := range model.Slots {
		r.Slots[i] = SlotResponse{
			Start:        slot.Range.Start.String(),
			End:          slot.Range.End.String(),
			PricePerHour: slot.PricePerHour,
		}
	}
}

type GetResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
	TotalData int                `json:"total_data"`
}

func (r *GetResourcesResponse) FromModels(models []model.Resource) {
	r.TotalData = len(models)
	r.Resources = make([]ResourceResponse, len(models))

	for i, mod := range models {
		r.Resources[i].FromModel(mod)
	}
}
