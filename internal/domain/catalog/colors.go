package catalog

// displayColors maps each state to the CSS utility class the chart UI
// renders it with. Presentation data kept apart from the clinical entries.
var displayColors = map[State]string{
	// Estado Normal
	"sano": "bg-green-500",

	// Caries
	"caries":            "bg-yellow-500",
	"caries_incipiente": "bg-yellow-300",
	"caries_recurrente": "bg-yellow-600",
	"caries_radicular":  "bg-yellow-700",
	"caries_rampante":   "bg-yellow-800",

	// Restauraciones
	"obturado":           "bg-blue-500",
	"obturado_amalgama":  "bg-gray-500",
	"obturado_composite": "bg-blue-400",
	"obturado_ionomero":  "bg-blue-300",
	"obturado_temporal":  "bg-blue-200",
	"obturado_filtrado":  "bg-blue-700",
	"inlay":              "bg-indigo-400",
	"onlay":              "bg-indigo-500",
	"overlay":            "bg-indigo-600",
	"sellante":           "bg-teal-400",
	"carilla":            "bg-sky-400",

	// Coronas/Prótesis
	"corona":                 "bg-purple-500",
	"corona_metal":           "bg-gray-600",
	"corona_porcelana":       "bg-purple-400",
	"corona_metal_porcelana": "bg-purple-600",
	"corona_zirconio":        "bg-violet-400",
	"corona_provisional":     "bg-purple-300",
	"puente_pilar":           "bg-fuchsia-500",
	"puente_pontico":         "bg-fuchsia-400",
	"protesis_fija":          "bg-fuchsia-600",

	// Endodoncia
	"endodoncia":          "bg-orange-500",
	"endodoncia_iniciada": "bg-orange-400",
	"endodoncia_fallida":  "bg-orange-700",
	"pulpotomia":          "bg-orange-300",
	"pulpectomia":         "bg-orange-350",
	"apicoformacion":      "bg-orange-200",
	"apicectomia":         "bg-orange-600",
	"poste":               "bg-amber-500",
	"poste_munon":         "bg-amber-600",

	// Patología Pulpar
	"pulpitis_reversible":   "bg-red-400",
	"pulpitis_irreversible": "bg-red-500",
	"necrosis_pulpar":       "bg-red-800",
	"diente_no_vital":       "bg-gray-700",

	// Patología Periapical
	"absceso":              "bg-red-900",
	"granuloma":            "bg-red-700",
	"quiste_periapical":    "bg-red-800",
	"periodontitis_apical": "bg-red-600",
	"osteitis_condensante": "bg-red-950",
	"fistula":              "bg-rose-700",

	// Periodontal
	"periodontitis":          "bg-pink-600",
	"periodontitis_leve":     "bg-pink-500",
	"periodontitis_moderada": "bg-pink-600",
	"periodontitis_severa":   "bg-pink-700",
	"gingivitis":             "bg-pink-400",
	"movilidad":              "bg-rose-500",
	"movilidad_grado_1":      "bg-rose-400",
	"movilidad_grado_2":      "bg-rose-500",
	"movilidad_grado_3":      "bg-rose-700",
	"furcacion":              "bg-rose-600",
	"furcacion_grado_1":      "bg-rose-500",
	"furcacion_grado_2":      "bg-rose-600",
	"furcacion_grado_3":      "bg-rose-700",
	"recesion_gingival":      "bg-pink-300",

	// Fracturas
	"fracturado":         "bg-amber-600",
	"fractura_esmalte":   "bg-amber-400",
	"fractura_coronaria": "bg-amber-500",
	"fractura_radicular": "bg-amber-700",
	"fractura_vertical":  "bg-amber-800",
	"fisura":             "bg-amber-300",
	"luxacion":           "bg-orange-600",
	"avulsion":           "bg-orange-800",
	"reimplantado":       "bg-teal-600",
	"ferulizado":         "bg-slate-400",

	// Desgaste
	"atricion":        "bg-stone-500",
	"abrasion":        "bg-stone-400",
	"erosion":         "bg-stone-600",
	"abfraccion":      "bg-stone-500",
	"desgaste_severo": "bg-stone-700",

	// Anomalías
	"hipoplasia":         "bg-lime-500",
	"hipomineralizacion": "bg-lime-400",
	"fluorosis":          "bg-lime-600",
	"amelogenesis":       "bg-emerald-400",
	"dentinogenesis":     "bg-emerald-500",
	"diente_fusionado":   "bg-emerald-600",
	"diente_geminado":    "bg-emerald-500",
	"dens_in_dente":      "bg-emerald-700",
	"taurodontismo":      "bg-teal-500",
	"dilaceracion":       "bg-teal-600",
	"microdoncia":        "bg-emerald-400",
	"macrodoncia":        "bg-emerald-600",
	"supernumerario":     "bg-violet-500",

	// Posición
	"retenido":                 "bg-slate-500",
	"semi_retenido":            "bg-slate-400",
	"no_erupcionado":           "bg-slate-300",
	"parcialmente_erupcionado": "bg-slate-350",
	"ectopico":                 "bg-zinc-500",
	"rotado":                   "bg-zinc-400",
	"inclinado":                "bg-zinc-450",
	"extruido":                 "bg-zinc-600",
	"intruido":                 "bg-zinc-550",
	"transposicion":            "bg-zinc-500",
	"diastema":                 "bg-zinc-300",

	// Ausencia
	"ausente":                  "bg-gray-400",
	"ausente_congenito":        "bg-gray-500",
	"extraccion_indicada":      "bg-red-500",
	"raiz_retenida":            "bg-gray-600",
	"alveolo_en_cicatrizacion": "bg-gray-300",

	// Implantes
	"implante":               "bg-cyan-500",
	"implante_oseointegrado": "bg-cyan-600",
	"implante_fallido":       "bg-cyan-800",
	"implante_provisional":   "bg-cyan-400",
	"pilar_implante":         "bg-cyan-550",
	"corona_sobre_implante":  "bg-cyan-450",

	// Prótesis Removible
	"protesis_removible": "bg-pink-500",
	"protesis_total":     "bg-pink-600",
	"gancho_protesis":    "bg-pink-400",

	// Ortodoncia
	"bracket":                   "bg-sky-500",
	"banda_ortodontica":         "bg-sky-600",
	"retenedor_fijo":            "bg-sky-400",
	"en_tratamiento_ortodoncia": "bg-sky-300",

	// Sensibilidad
	"hipersensibilidad":  "bg-blue-300",
	"sensibilidad_frio":  "bg-blue-200",
	"sensibilidad_calor": "bg-blue-250",

	// Estética
	"discromia":              "bg-amber-400",
	"tincion_intrinseca":     "bg-amber-500",
	"tincion_extrinseca":     "bg-amber-300",
	"blanqueamiento_interno": "bg-white",

	// Otros
	"en_observacion":        "bg-neutral-400",
	"tratamiento_pendiente": "bg-neutral-500",
	"derivar_especialista":  "bg-neutral-600",
}

// DisplayColor returns the UI color class for a state, or the neutral
// fallback when the state is unknown.
func DisplayColor(s State) string {
	if c, ok := displayColors[s]; ok {
		return c
	}
	return "bg-neutral-400"
}
