package config

import "github.com/spf13/pflag"

// BindFlags registers a flag for every Render setting, defaulting to the
// values already in r, so flags override the environment.
func BindFlags(fs *pflag.FlagSet, r *Render) {
	fs.IntVar(&r.Width, "width", r.Width, "image width in pixels")
	fs.IntVar(&r.Height, "height", r.Height, "image height in pixels")
	fs.IntVar(&r.MaxIterations, "max-iterations", r.MaxIterations, "iteration budget per sample")
	fs.IntVar(&r.SubPixels, "subpixels", r.SubPixels, "jittered samples per pixel")
	fs.Float64Var(&r.Bailout, "bailout", r.Bailout, "escape radius")
	fs.StringVar(&r.OutDir, "out", r.OutDir, "directory for rendered images")
	fs.IntVar(&r.Workers, "workers", r.Workers, "parallel workers; 0 uses one per CPU")
}
