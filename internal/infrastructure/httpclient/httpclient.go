package httpclient

import "net/http"

// HTTPClient es la costura para inyectar clientes HTTP en los tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
