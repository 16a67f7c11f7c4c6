package api

import "net/url"

// API endpoint paths, relative to the configured base URL
const (
	// Auth
	EndpointSignup = "/api/v1/auth/signup"
	EndpointLogin  = "/api/v1/auth/login"

	// Search
	EndpointSearch = "/api/v1/search"

	// Summarize
	EndpointSummarize = "/api/v1/summarize"

	// Chat
	EndpointChat = "/api/v1/chat"

	// Study cards, by resource id
	endpointCards = "/api/v1/cards"

	// Statistics
	EndpointStats = "/api/v1/analysis/stats"

	// User resources
	EndpointResources = "/api/v1/users/resources"

	// Contact
	EndpointContact = "/api/v1/contact"
)

// SummarizeByID returns the summary path of one resource
func SummarizeByID(id string) string {
	return EndpointSummarize + "/" + url.PathEscape(id)
}

// Cards returns the study cards path of one resource
func Cards(id string) string {
	return endpointCards + "/" + url.PathEscape(id)
}

// ResourceByID returns the path of one user resource
func ResourceByID(id string) string {
	return EndpointResources + "/" + url.PathEscape(id)
}

// Endpoint is a named entry of the registry
type Endpoint struct {
	Name          string
	Path          string
	Parameterized bool // Path ends with a resource id
}

// Endpoints lists every API endpoint the shell talks to
func Endpoints() []Endpoint {
	return []Endpoint{
		{Name: "signup", Path: EndpointSignup},
		{Name: "login", Path: EndpointLogin},
		{Name: "search", Path: EndpointSearch},
		{Name: "summarize", Path: EndpointSummarize},
		{Name: "summarize-by-id", Path: EndpointSummarize + "/{id}", Parameterized: true},
		{Name: "chat", Path: EndpointChat},
		{Name: "cards", Path: endpointCards + "/{id}", Parameterized: true},
		{Name: "stats", Path: EndpointStats},
		{Name: "resources", Path: EndpointResources},
		{Name: "resource-by-id", Path: EndpointResources + "/{id}", Parameterized: true},
		{Name: "contact", Path: EndpointContact},
	}
}
