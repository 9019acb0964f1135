// Package resolve composes explicit model configuration with secret store
// lookups into an effective API credential.
//
// Resolution order is fixed: an explicit key in the model configuration wins,
// keyless providers succeed without consulting any store, and otherwise the
// stores are consulted with plugins first (in registration order), then
// memory, then env. WithOrder pins a different consultation order when the
// default is wrong for a deployment.
package resolve
