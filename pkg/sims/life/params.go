package life

import "lifeline/pkg/core"

// Parameters exposes the grid's dimensions and progress to the HUD.
func (g *Grid) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", g.w),
				core.IntParam("h", "Height", g.h),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", g.gen),
				core.IntParam("population", "Population", g.Population()),
			},
		},
	}}
}
