package entity

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genStatus() gopter.Gen {
	return gen.OneConstOf(
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
	)
}

func TestTransitionTableProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("terminal statuses admit no transition", prop.ForAll(
		func(from BookingStatus, to BookingStatus) bool {
			if !from.Terminal() {
				return true
			}
			return !from.CanTransitionTo(to)
		},
		genStatus(), genStatus(),
	))

	properties.Property("every reachable target is a valid status", prop.ForAll(
		func(from BookingStatus, to BookingStatus) bool {
			if from.CanTransitionTo(to) {
				return to.Valid()
			}
			return true
		},
		genStatus(), genStatus(),
	))

	properties.Property("no transition is its own inverse", prop.ForAll(
		func(from BookingStatus, to BookingStatus) bool {
			if from.CanTransitionTo(to) {
				return !to.CanTransitionTo(from)
			}
			return true
		},
		genStatus(), genStatus(),
	))

	properties.TestingRun(t)
}

func TestPricingProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("total price is unit price times guests", prop.ForAll(
		func(price float64, guests int) bool {
			reel := Reel{Price: &price}
			return reel.UnitPrice()*float64(guests) == price*float64(guests)
		},
		gen.Float64Range(0, 1e6), gen.IntRange(1, 50),
	))

	properties.Property("a reel without a price books at zero", prop.ForAll(
		func(guests int) bool {
			reel := Reel{}
			return reel.UnitPrice()*float64(guests) == 0
		},
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t)
}
