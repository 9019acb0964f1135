package resolve

import (
	"fmt"
	"strings"
)

// MissingCredentialError reports that no store could supply a credential for
// a provider. Consulted lists every store name checked, in consultation
// order, so the message tells the operator exactly where to put the key.
type MissingCredentialError struct {
	Provider  string
	Consulted []string
}

func (e *MissingCredentialError) Error() string {
	if len(e.Consulted) == 0 {
		return fmt.Sprintf("resolve: no API key found for provider %q (no stores consulted)", e.Provider)
	}
	return fmt.Sprintf("resolve: no API key found for provider %q (consulted stores: %s)",
		e.Provider, strings.Join(e.Consulted, ", "))
}
