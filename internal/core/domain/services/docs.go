// Package services contains stateless domain services that coordinate or
// extend the aggregates without belonging to any single one of them.
//
// Currently this is the surcharge strategies: optional price adjustments
// (primer treatment, high coating thickness) applied by use cases after the
// pricing profile has resolved a base price.
package services
