package influx

// Config defines the configuration for the client.
type Config struct {
	// Endpoint is the base URL of the server, e.g. "http://localhost:8086".
	Endpoint string `json:"endpoint"`
}
