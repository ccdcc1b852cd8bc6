package utils

import (
	"github.com/hailam/fillgen/internal/ports"
	"github.com/hailam/fillgen/internal/utils"
)

// UtilSizeParser adapts utils.ParseSize to the ports.SizeParser interface.
type UtilSizeParser struct{}

// NewUtilSizeParser creates a new size parser adapter.
func NewUtilSizeParser() ports.SizeParser {
	return &UtilSizeParser{}
}

// Parse accepts <number>[B|KB|MB|GB]. Errors wrap utils.ErrInvalidSizeFormat.
func (p *UtilSizeParser) Parse(spec string) (int64, error) {
	return utils.ParseSize(spec)
}
