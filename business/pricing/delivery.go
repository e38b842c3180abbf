package pricing

import (
	"context"
	"strings"
)

// DeliveryChecker decides whether a given source can fulfil an order to the
// target location. The engine depends only on this contract so the
// placeholder rule can be swapped for a real serviceability lookup.
type DeliveryChecker interface {
	Delivers(ctx context.Context, source, location, pincode string) (bool, error)
}

// NoopDeliveryChecker treats every source/location pair as deliverable.
type NoopDeliveryChecker struct{}

func (NoopDeliveryChecker) Delivers(ctx context.Context, source, location, pincode string) (bool, error) {
	return true, nil
}

// HeuristicDeliveryChecker is the default implementation: deliverable by
// default, with one carved-out exception standing in for a real
// reachability lookup.
type HeuristicDeliveryChecker struct{}

func (HeuristicDeliveryChecker) Delivers(ctx context.Context, source, location, pincode string) (bool, error) {
	s := strings.ToLower(source)
	if strings.Contains(s, "dmart") && strings.Contains(strings.ToLower(location), "bidar") {
		return false, nil
	}
	return true, nil
}
