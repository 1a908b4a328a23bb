package endpoints

import "github.com/grimoire-tools/grimoire/internal/api"

// All returns every endpoint the server exposes.
func All() []api.Endpoint {
	return []api.Endpoint{
		&HealthEndpoint{},
		&StatusEndpoint{},
		&DetectEndpoint{},
		&ParseEndpoint{},
		&StatblockEndpoint{},
	}
}
