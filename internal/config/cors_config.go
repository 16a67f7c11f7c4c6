package config

import (
	"fmt"
	"net"
	"strings"
)

type Preview struct{}

var _ PreviewConfig = Preview{}

type nullValue = struct{}

type AllowedOrigins map[string]struct{}

func (a AllowedOrigins) IsAllowedOrigin(origin string) bool {
	_, ok := a[origin]
	return ok
}

func (a AllowedOrigins) String() string {
	var origins []string
	for k := range a {
		origins = append(origins, k)
	}
	return strings.Join(origins, ", ")
}

// AllowedHosts is the Host header allow list of the preview server. Empty allows any host.
type AllowedHosts map[string]struct{}

func (a AllowedHosts) IsAllowedHost(host string) bool {
	if len(a) == 0 {
		return true
	}
	if _, ok := a["*"]; ok {
		return true
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	_, ok := a[strings.ToLower(host)]
	return ok
}

func (Preview) GetPort() string {
	port := GetEnv("PORT", "4173")
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (Preview) GetPreviewDir() string {
	return GetEnv("PREVIEW_DIR", "./dist")
}

func (Preview) GetAllowedHosts() AllowedHosts {
	hosts := AllowedHosts{}
	for _, h := range GetList("ALLOWED_HOSTS") {
		hosts[strings.ToLower(h)] = nullValue{}
	}
	return hosts
}

func (Preview) GetAllowedOrigins() AllowedOrigins {
	origins := AllowedOrigins{}
	for _, o := range GetList("ALLOWED_ORIGINS") {
		origins[o] = nullValue{}
	}
	return origins
}

func (Preview) GetAllowedMethods() string {
	return "GET, HEAD, OPTIONS"
}

func (Preview) GetAllowedHeaders() string {
	return "Content-Type, Authorization"
}
