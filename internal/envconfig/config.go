// Package envconfig reads numnet settings from the environment.
package envconfig

import (
	"os"
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	"github.com/born-ml/numnet/internal/opr"
)

// Provider returns the default operator provider.
// Configurable via NUMNET_PROVIDER; unknown names fall back to naive.
func Provider() opr.Provider {
	s := Var("NUMNET_PROVIDER")
	if s == "" {
		return opr.Naive
	}
	p, err := opr.ParseProvider(s)
	if err != nil {
		klog.InfoS("invalid NUMNET_PROVIDER, using default", "value", s, "default", opr.Naive)
		return opr.Naive
	}
	return p
}

// Verbosity returns the klog verbosity level.
// Configurable via NUMNET_DEBUG: a boolean true maps to 4, an integer is
// used as is.
func Verbosity() int {
	s := Var("NUMNET_DEBUG")
	if s == "" {
		return 0
	}
	if b, err := strconv.ParseBool(s); err == nil {
		if b {
			return 4
		}
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return 0
}

// Var returns an environment variable stripped of surrounding quotes and spaces.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// EnvVar describes one setting.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every setting with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"NUMNET_PROVIDER": {"NUMNET_PROVIDER", Provider(), "Default operator provider (default: naive)"},
		"NUMNET_DEBUG":    {"NUMNET_DEBUG", Verbosity(), "Log verbosity (e.g. NUMNET_DEBUG=1 or NUMNET_DEBUG=6)"},
	}
}
