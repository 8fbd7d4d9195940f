package cloud

import (
	"cloud.google.com/go/compute/metadata"
)

// MetadataResolver reads instance identity from the GCE metadata server.
type MetadataResolver interface {
	OnGCE() bool
	ProjectID() (string, error)
	Zone() (string, error)
}

type metadataResolver struct{}

func NewMetadataResolver() MetadataResolver {
	return &metadataResolver{}
}

func (metadataResolver) OnGCE() bool {
	return metadata.OnGCE()
}

// ProjectID get GCP project ID from metadata
func (metadataResolver) ProjectID() (string, error) {
	return metadata.ProjectID() //nolint:wrapcheck
}

// Zone get the zone of the instance this process runs on from metadata
func (metadataResolver) Zone() (string, error) {
	return metadata.Zone() //nolint:wrapcheck
}
