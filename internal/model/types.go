package model

// Request is a single conversion of one source image into a target format.
type Request struct {
	SourcePath string
	Format     string
}
