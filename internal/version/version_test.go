package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, SpringBootVersion, info.SpringBootVersion)

	s := info.String()
	assert.True(t, strings.HasPrefix(s, "initializr "+Version+"\n"))
	assert.Contains(t, s, "spring boot: "+SpringBootVersion)
}
