package types

type CloudProvider string

const (
	CloudProviderGCP CloudProvider = "gcp"
	CloudProviderAWS CloudProvider = "aws"
	CloudProviderOCI CloudProvider = "oci"
)

// WaitStrategy selects what the executor polls after a lifecycle call.
type WaitStrategy string

const (
	// WaitForStatus polls the instance status until the target status is observed
	WaitForStatus WaitStrategy = "status"
	// WaitForOperation polls the zonal operation until it is DONE (GCP only)
	WaitForOperation WaitStrategy = "operation"
)
