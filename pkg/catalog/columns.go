package catalog

import "slices"

// withErrors expands each parameter into itself and its lower and upper
// error bounds, the layout exoplanet.eu uses for measured quantities.
func withErrors(params ...string) []string {
	out := make([]string, 0, 3*len(params))
	for _, p := range params {
		out = append(out, p, p+"_error_min", p+"_error_max")
	}
	return out
}

// floatColumns lists the exoplanet.eu columns that hold numbers. Every
// other column is kept as raw text.
var floatColumns = slices.Concat(
	withErrors(
		"mass",
		"mass_sini",
		"radius",
		"orbital_period",
		"semi_major_axis",
		"eccentricity",
		"inclination",
	),
	[]string{"angular_distance", "discovered"},
	withErrors(
		"omega",
		"tperi",
		"tconj",
		"tzero_tr",
		"tzero_tr_sec",
		"lambda_angle",
		"impact_parameter",
		"tzero_vr",
		"k",
		"temp_calculated",
	),
	[]string{"temp_measured", "hot_point_lon"},
	withErrors("geometric_albedo"),
	[]string{
		"log_g",
		"ra",
		"dec",
		"mag_v",
		"mag_i",
		"mag_j",
		"mag_h",
		"mag_k",
	},
	withErrors(
		"star_distance",
		"star_metallicity",
		"star_mass",
		"star_radius",
		"star_age",
		"star_teff",
	),
)

// FloatColumns returns the default list of numeric catalog columns.
// The returned slice is a copy.
func FloatColumns() []string {
	return slices.Clone(floatColumns)
}
