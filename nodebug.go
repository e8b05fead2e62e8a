//go:build !divpow10_debug

package divpow10

const debugDiv = false
