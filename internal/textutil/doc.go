// Package textutil sanitizes strings that become path segments, such as the
// camera serial numbers used for output folders.
package textutil
