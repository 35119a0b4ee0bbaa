package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// ListPets retrieves the caller's pets. GET /api/pets
func ListPets(ctx context.Context, hc *http.Client, baseURL string) (*types.List[types.Pet], error) {
	var list types.List[types.Pet]
	u := fmt.Sprintf("%s/api/pets", baseURL)
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &list, http.StatusOK, "list pets"); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetPet retrieves a pet profile. GET /api/pets/{id}
func GetPet(ctx context.Context, hc *http.Client, baseURL, petID string) (*types.Pet, error) {
	if err := types.ValidateID(petID, "petId"); err != nil {
		return nil, err
	}
	var pet types.Pet
	u := fmt.Sprintf("%s/api/pets/%s", baseURL, pathEscape(petID))
	if err := doJSON(ctx, hc, http.MethodGet, u, nil, &pet, http.StatusOK, "get pet"); err != nil {
		return nil, err
	}
	return &pet, nil
}

// CreatePet registers a new pet. POST /api/pets
func CreatePet(ctx context.Context, hc *http.Client, baseURL string, req types.UpsertPetRequest) (*types.Pet, error) {
	if err := types.ValidateSpecies(req.Species); err != nil {
		return nil, err
	}
	var pet types.Pet
	u := fmt.Sprintf("%s/api/pets", baseURL)
	if err := doJSON(ctx, hc, http.MethodPost, u, req, &pet, http.StatusCreated, "create pet"); err != nil {
		return nil, err
	}
	return &pet, nil
}

// UpdatePet patches a pet profile. PUT /api/pets/{id}
func UpdatePet(ctx context.Context, hc *http.Client, baseURL, petID string, req types.UpsertPetRequest) (*types.Pet, error) {
	if err := types.ValidateID(petID, "petId"); err != nil {
		return nil, err
	}
	var pet types.Pet
	u := fmt.Sprintf("%s/api/pets/%s", baseURL, pathEscape(petID))
	if err := doJSON(ctx, hc, http.MethodPut, u, req, &pet, http.StatusOK, "update pet"); err != nil {
		return nil, err
	}
	return &pet, nil
}

// DeletePet removes a pet. DELETE /api/pets/{id}
func DeletePet(ctx context.Context, hc *http.Client, baseURL, petID string) error {
	if err := types.ValidateID(petID, "petId"); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/api/pets/%s", baseURL, pathEscape(petID))
	return doJSON(ctx, hc, http.MethodDelete, u, nil, nil, http.StatusNoContent, "delete pet")
}

// AddVaccination appends to the pet's health record.
// POST /api/pets/{id}/vaccinations
func AddVaccination(ctx context.Context, hc *http.Client, baseURL, petID string, v types.Vaccination) (*types.Pet, error) {
	if err := types.ValidateID(petID, "petId"); err != nil {
		return nil, err
	}
	var pet types.Pet
	u := fmt.Sprintf("%s/api/pets/%s/vaccinations", baseURL, pathEscape(petID))
	if err := doJSON(ctx, hc, http.MethodPost, u, v, &pet, http.StatusCreated, "add vaccination"); err != nil {
		return nil, err
	}
	return &pet, nil
}

// AddCheckup appends a vet visit to the pet's health record.
// POST /api/pets/{id}/checkups
func AddCheckup(ctx context.Context, hc *http.Client, baseURL, petID string, c types.Checkup) (*types.Pet, error) {
	if err := types.ValidateID(petID, "petId"); err != nil {
		return nil, err
	}
	var pet types.Pet
	u := fmt.Sprintf("%s/api/pets/%s/checkups", baseURL, pathEscape(petID))
	if err := doJSON(ctx, hc, http.MethodPost, u, c, &pet, http.StatusCreated, "add checkup"); err != nil {
		return nil, err
	}
	return &pet, nil
}

// AddReminder schedules a care task. POST /api/pets/{id}/reminders
func AddReminder(ctx context.Context, hc *http.Client, baseURL, petID string, req types.AddReminderRequest) (*types.Reminder, error) {
	if err := types.ValidateID(petID, "petId"); err != nil {
		return nil, err
	}
	var reminder types.Reminder
	u := fmt.Sprintf("%s/api/pets/%s/reminders", baseURL, pathEscape(petID))
	if err := doJSON(ctx, hc, http.MethodPost, u, req, &reminder, http.StatusCreated, "add reminder"); err != nil {
		return nil, err
	}
	return &reminder, nil
}
