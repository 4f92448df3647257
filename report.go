package bekk

import (
	"github.com/rs/zerolog"
)

// LogSummary emits the estimation summary as a structured log event, for
// pipelines that collect estimation runs instead of parsing the rendered
// text.
func (r *Results) LogSummary(log zerolog.Logger) {
	ev := log.Info().
		Str("component", "bekk_results").
		Str("model", r.Model).
		Str("restriction", r.Restriction).
		Bool("use_target", r.UseTarget).
		Bool("cfree", r.CFree).
		Str("method", r.Method).
		Dur("optimization_time", r.TimeDelta)

	if r.OptOut != nil {
		ev = ev.Int("n_params", len(r.OptOut.X)).
			Float64("objective", r.OptOut.Fun).
			Bool("success", r.OptOut.Success)
		if r.OptOut.Iterations != nil {
			ev = ev.Int("iterations", *r.OptOut.Iterations)
		}
	}
	if r.ParamFinal != nil && r.OptOut != nil {
		ev = ev.Float64("loglikelihood", -r.OptOut.Fun+r.ParamFinal.Penalty())
	}

	ev.Msg("estimation finished")
}
