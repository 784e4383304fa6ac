package host

import (
	"fmt"
	"log"

	"github.com/tdewolff/pivotline"
)

// Host mounts visualizations from its registry and displays their configuration errors in its log.
type Host struct {
	Registry *Registry
	log      *log.Logger
	errors   []pivotline.ConfigurationError
}

// New returns a host that logs to logger.
func New(registry *Registry, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.Default()
	}
	return &Host{
		Registry: registry,
		log:      logger,
	}
}

// AddError displays a configuration error.
func (h *Host) AddError(err pivotline.ConfigurationError) {
	h.log.Printf("%s: %s", err.Title, err.Message)
	h.errors = append(h.errors, err)
}

// Errors returns the errors displayed since the last ClearErrors.
func (h *Host) Errors() []pivotline.ConfigurationError {
	return h.errors
}

// ClearErrors removes all displayed errors. Slices returned by Errors before are left untouched.
func (h *Host) ClearErrors() {
	h.errors = nil
}

// Instance is a visualization mounted in a container.
type Instance struct {
	host      *Host
	vis       pivotline.Visualization
	container pivotline.Container
}

// Mount creates the visualization id and initializes it in container.
func (h *Host) Mount(id string, container pivotline.Container, cfg pivotline.Config) (*Instance, error) {
	def, ok := h.Registry.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown visualization %q", id)
	}

	vis := def.New(h)
	vis.Initialize(container, cfg)
	return &Instance{
		host:      h,
		vis:       vis,
		container: container,
	}, nil
}

// Update renders the query response. Previously displayed errors are cleared first.
func (i *Instance) Update(response pivotline.QueryResponse, cfg pivotline.Config) error {
	i.host.ClearErrors()
	return i.vis.Render(response.Data, i.container, cfg, response.QueryShape)
}
