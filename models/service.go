package models

import "homey/store"

// ServiceDetail joins a service with the user document of the provider
// its email field points at. The reference is unenforced, so the
// provider half can be missing even when the service exists.
type ServiceDetail struct {
	Service  store.Document `json:"service"`
	Provider store.Document `json:"provider"`
}
