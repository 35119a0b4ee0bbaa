package types

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pawplanet/pawplanet-go/client/internal/shardqueue"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// Executor interface for dependency injection (used by async operations).
type Executor interface {
	Submit(context.Context, string, shardqueue.Job) error
}

// HTTPClient interface for dependency injection.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ------------------------------
// Validation
// ------------------------------

// ValidateID checks that an identifier is present. Identifier shape is
// backend-defined (opaque), so only presence is enforced client-side.
func ValidateID(id, fieldName string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateSpecies checks a species against the supported enum.
func ValidateSpecies(s Species) error {
	switch s {
	case SpeciesCat, SpeciesDog, SpeciesRabbit, SpeciesHamster, SpeciesBird, SpeciesFish, SpeciesOther:
		return nil
	case "":
		return fmt.Errorf("species is required")
	default:
		return fmt.Errorf("unsupported species %q", s)
	}
}

// ValidatePostCategory checks a post category against the supported enum.
func ValidatePostCategory(c PostCategory) error {
	switch c {
	case PostDaily, PostFunny, PostMedical, PostFood, PostTraining, PostTravel, PostOther:
		return nil
	case "":
		return fmt.Errorf("category is required")
	default:
		return fmt.Errorf("unsupported post category %q", c)
	}
}

// ValidateServiceCategory checks a service category against the supported enum.
func ValidateServiceCategory(c ServiceCategory) error {
	switch c {
	case ServiceHospital, ServiceGrooming, ServiceBoarding, ServiceTraining, ServicePhotography, ServiceDaycare:
		return nil
	case "":
		return fmt.Errorf("category is required")
	default:
		return fmt.Errorf("unsupported service category %q", c)
	}
}

// ValidateItemType checks a polymorphic target discriminator.
func ValidateItemType(t ItemType) error {
	switch t {
	case ItemPost, ItemPet, ItemProduct, ItemService:
		return nil
	case "":
		return fmt.Errorf("itemType is required")
	default:
		return fmt.Errorf("unsupported item type %q", t)
	}
}

// ValidateScore checks a 1-5 review score.
func ValidateScore(score int) error {
	if score < 1 || score > 5 {
		return fmt.Errorf("score must be between 1 and 5")
	}
	return nil
}
