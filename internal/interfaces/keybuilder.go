package interfaces

import "net/http"

// KeyBuilder canonizes requests into deterministic partition keys
type KeyBuilder interface {
	Build(req *http.Request) (string, error)
}
