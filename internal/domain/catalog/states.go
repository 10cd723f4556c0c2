// Package catalog holds the clinical tooth state vocabulary used by the
// odontogram. States are stable machine identifiers; labels and categories
// are the Spanish-language display strings shown to practitioners.
package catalog

// State identifies a clinical tooth condition.
type State string

// StateHealthy is the baseline condition every tooth starts in.
const StateHealthy State = "sano"

// Entry describes one state of the catalogue.
type Entry struct {
	State    State  `json:"state"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// entries lists every recognised state grouped by clinical category. The
// slice keeps the curated grouping order; All returns an alphabetical copy.
var entries = []Entry{
	// Estado Normal
	{State: "sano", Label: "Sano", Category: "Estado Normal"},

	// Caries
	{State: "caries", Label: "Caries", Category: "Caries"},
	{State: "caries_incipiente", Label: "Caries incipiente (mancha blanca)", Category: "Caries"},
	{State: "caries_recurrente", Label: "Caries recurrente/secundaria", Category: "Caries"},
	{State: "caries_radicular", Label: "Caries radicular", Category: "Caries"},
	{State: "caries_rampante", Label: "Caries rampante (agresiva)", Category: "Caries"},

	// Restauraciones
	{State: "obturado", Label: "Obturado/Restaurado", Category: "Restauraciones"},
	{State: "obturado_amalgama", Label: "Obturación amalgama", Category: "Restauraciones"},
	{State: "obturado_composite", Label: "Obturación composite/resina", Category: "Restauraciones"},
	{State: "obturado_ionomero", Label: "Obturación ionómero de vidrio", Category: "Restauraciones"},
	{State: "obturado_temporal", Label: "Obturación temporal", Category: "Restauraciones"},
	{State: "obturado_filtrado", Label: "Obturación filtrada", Category: "Restauraciones"},
	{State: "inlay", Label: "Inlay", Category: "Restauraciones"},
	{State: "onlay", Label: "Onlay", Category: "Restauraciones"},
	{State: "overlay", Label: "Overlay", Category: "Restauraciones"},
	{State: "sellante", Label: "Sellante de fisuras", Category: "Restauraciones"},
	{State: "carilla", Label: "Carilla/Veneer", Category: "Restauraciones"},

	// Coronas/Prótesis
	{State: "corona", Label: "Corona", Category: "Coronas/Prótesis"},
	{State: "corona_metal", Label: "Corona metálica", Category: "Coronas/Prótesis"},
	{State: "corona_porcelana", Label: "Corona porcelana", Category: "Coronas/Prótesis"},
	{State: "corona_metal_porcelana", Label: "Corona metal-cerámica", Category: "Coronas/Prótesis"},
	{State: "corona_zirconio", Label: "Corona zirconio", Category: "Coronas/Prótesis"},
	{State: "corona_provisional", Label: "Corona provisional", Category: "Coronas/Prótesis"},
	{State: "puente_pilar", Label: "Pilar de puente", Category: "Coronas/Prótesis"},
	{State: "puente_pontico", Label: "Póntico de puente", Category: "Coronas/Prótesis"},
	{State: "protesis_fija", Label: "Prótesis fija", Category: "Coronas/Prótesis"},

	// Endodoncia
	{State: "endodoncia", Label: "Endodoncia realizada", Category: "Endodoncia"},
	{State: "endodoncia_iniciada", Label: "Endodoncia en proceso", Category: "Endodoncia"},
	{State: "endodoncia_fallida", Label: "Endodoncia fallida", Category: "Endodoncia"},
	{State: "pulpotomia", Label: "Pulpotomía", Category: "Endodoncia"},
	{State: "pulpectomia", Label: "Pulpectomía", Category: "Endodoncia"},
	{State: "apicoformacion", Label: "Apicoformación", Category: "Endodoncia"},
	{State: "apicectomia", Label: "Apicectomía realizada", Category: "Endodoncia"},
	{State: "poste", Label: "Poste/perno", Category: "Endodoncia"},
	{State: "poste_munon", Label: "Poste + muñón", Category: "Endodoncia"},

	// Patología Pulpar
	{State: "pulpitis_reversible", Label: "Pulpitis reversible", Category: "Patología Pulpar"},
	{State: "pulpitis_irreversible", Label: "Pulpitis irreversible", Category: "Patología Pulpar"},
	{State: "necrosis_pulpar", Label: "Necrosis pulpar", Category: "Patología Pulpar"},
	{State: "diente_no_vital", Label: "Diente no vital", Category: "Patología Pulpar"},

	// Patología Periapical
	{State: "absceso", Label: "Absceso periapical", Category: "Patología Periapical"},
	{State: "granuloma", Label: "Granuloma periapical", Category: "Patología Periapical"},
	{State: "quiste_periapical", Label: "Quiste periapical", Category: "Patología Periapical"},
	{State: "periodontitis_apical", Label: "Periodontitis apical", Category: "Patología Periapical"},
	{State: "osteitis_condensante", Label: "Osteítis condensante", Category: "Patología Periapical"},
	{State: "fistula", Label: "Fístula/tracto sinuoso", Category: "Patología Periapical"},

	// Periodontal
	{State: "periodontitis", Label: "Periodontitis", Category: "Periodontal"},
	{State: "periodontitis_leve", Label: "Periodontitis leve (estadio I)", Category: "Periodontal"},
	{State: "periodontitis_moderada", Label: "Periodontitis moderada (estadio II)", Category: "Periodontal"},
	{State: "periodontitis_severa", Label: "Periodontitis severa (estadio III-IV)", Category: "Periodontal"},
	{State: "gingivitis", Label: "Gingivitis", Category: "Periodontal"},
	{State: "movilidad", Label: "Movilidad dental", Category: "Periodontal"},
	{State: "movilidad_grado_1", Label: "Movilidad grado I (<1mm)", Category: "Periodontal"},
	{State: "movilidad_grado_2", Label: "Movilidad grado II (1-2mm)", Category: "Periodontal"},
	{State: "movilidad_grado_3", Label: "Movilidad grado III (>2mm)", Category: "Periodontal"},
	{State: "furcacion", Label: "Lesión de furcación", Category: "Periodontal"},
	{State: "furcacion_grado_1", Label: "Furcación grado I", Category: "Periodontal"},
	{State: "furcacion_grado_2", Label: "Furcación grado II", Category: "Periodontal"},
	{State: "furcacion_grado_3", Label: "Furcación grado III", Category: "Periodontal"},
	{State: "recesion_gingival", Label: "Recesión gingival", Category: "Periodontal"},

	// Fracturas
	{State: "fracturado", Label: "Fracturado", Category: "Fracturas"},
	{State: "fractura_esmalte", Label: "Fractura de esmalte", Category: "Fracturas"},
	{State: "fractura_coronaria", Label: "Fractura coronaria (esmalte+dentina)", Category: "Fracturas"},
	{State: "fractura_radicular", Label: "Fractura radicular", Category: "Fracturas"},
	{State: "fractura_vertical", Label: "Fractura vertical", Category: "Fracturas"},
	{State: "fisura", Label: "Fisura/línea de fractura", Category: "Fracturas"},
	{State: "luxacion", Label: "Luxación dental", Category: "Fracturas"},
	{State: "avulsion", Label: "Avulsión dental", Category: "Fracturas"},
	{State: "reimplantado", Label: "Diente reimplantado", Category: "Fracturas"},
	{State: "ferulizado", Label: "Ferulizado", Category: "Fracturas"},

	// Desgaste
	{State: "atricion", Label: "Atrición (desgaste oclusal)", Category: "Desgaste"},
	{State: "abrasion", Label: "Abrasión (agente externo)", Category: "Desgaste"},
	{State: "erosion", Label: "Erosión (ácido)", Category: "Desgaste"},
	{State: "abfraccion", Label: "Abfracción (lesión cervical)", Category: "Desgaste"},
	{State: "desgaste_severo", Label: "Desgaste dental severo", Category: "Desgaste"},

	// Anomalías
	{State: "hipoplasia", Label: "Hipoplasia del esmalte", Category: "Anomalías"},
	{State: "hipomineralizacion", Label: "Hipomineralización (MIH)", Category: "Anomalías"},
	{State: "fluorosis", Label: "Fluorosis dental", Category: "Anomalías"},
	{State: "amelogenesis", Label: "Amelogénesis imperfecta", Category: "Anomalías"},
	{State: "dentinogenesis", Label: "Dentinogénesis imperfecta", Category: "Anomalías"},
	{State: "diente_fusionado", Label: "Diente fusionado", Category: "Anomalías"},
	{State: "diente_geminado", Label: "Diente geminado", Category: "Anomalías"},
	{State: "dens_in_dente", Label: "Dens invaginatus", Category: "Anomalías"},
	{State: "taurodontismo", Label: "Taurodontismo", Category: "Anomalías"},
	{State: "dilaceracion", Label: "Dilaceración radicular", Category: "Anomalías"},
	{State: "microdoncia", Label: "Microdoncia", Category: "Anomalías"},
	{State: "macrodoncia", Label: "Macrodoncia", Category: "Anomalías"},
	{State: "supernumerario", Label: "Supernumerario", Category: "Anomalías"},

	// Posición
	{State: "retenido", Label: "Retenido/Impactado", Category: "Posición"},
	{State: "semi_retenido", Label: "Semi-retenido", Category: "Posición"},
	{State: "no_erupcionado", Label: "No erupcionado", Category: "Posición"},
	{State: "parcialmente_erupcionado", Label: "Parcialmente erupcionado", Category: "Posición"},
	{State: "ectopico", Label: "Erupción ectópica", Category: "Posición"},
	{State: "rotado", Label: "Rotado", Category: "Posición"},
	{State: "inclinado", Label: "Inclinado/Tipped", Category: "Posición"},
	{State: "extruido", Label: "Extruido", Category: "Posición"},
	{State: "intruido", Label: "Intruido", Category: "Posición"},
	{State: "transposicion", Label: "Transposición dental", Category: "Posición"},
	{State: "diastema", Label: "Diastema", Category: "Posición"},

	// Ausencia
	{State: "ausente", Label: "Ausente", Category: "Ausencia"},
	{State: "ausente_congenito", Label: "Agenesia (ausencia congénita)", Category: "Ausencia"},
	{State: "extraccion_indicada", Label: "Extracción indicada", Category: "Ausencia"},
	{State: "raiz_retenida", Label: "Raíz retenida/resto radicular", Category: "Ausencia"},
	{State: "alveolo_en_cicatrizacion", Label: "Alvéolo en cicatrización", Category: "Ausencia"},

	// Implantes
	{State: "implante", Label: "Implante dental", Category: "Implantes"},
	{State: "implante_oseointegrado", Label: "Implante oseointegrado", Category: "Implantes"},
	{State: "implante_fallido", Label: "Implante fallido", Category: "Implantes"},
	{State: "implante_provisional", Label: "Implante provisional", Category: "Implantes"},
	{State: "pilar_implante", Label: "Pilar sobre implante", Category: "Implantes"},
	{State: "corona_sobre_implante", Label: "Corona sobre implante", Category: "Implantes"},

	// Prótesis Removible
	{State: "protesis_removible", Label: "Prótesis removible", Category: "Prótesis Removible"},
	{State: "protesis_total", Label: "Prótesis total/dentadura", Category: "Prótesis Removible"},
	{State: "gancho_protesis", Label: "Gancho de prótesis", Category: "Prótesis Removible"},

	// Ortodoncia
	{State: "bracket", Label: "Bracket ortodóntico", Category: "Ortodoncia"},
	{State: "banda_ortodontica", Label: "Banda ortodóntica", Category: "Ortodoncia"},
	{State: "retenedor_fijo", Label: "Retenedor fijo", Category: "Ortodoncia"},
	{State: "en_tratamiento_ortodoncia", Label: "En tratamiento ortodóntico", Category: "Ortodoncia"},

	// Sensibilidad
	{State: "hipersensibilidad", Label: "Hipersensibilidad dentinaria", Category: "Sensibilidad"},
	{State: "sensibilidad_frio", Label: "Sensibilidad al frío", Category: "Sensibilidad"},
	{State: "sensibilidad_calor", Label: "Sensibilidad al calor", Category: "Sensibilidad"},

	// Estética
	{State: "discromia", Label: "Discromía (cambio de color)", Category: "Estética"},
	{State: "tincion_intrinseca", Label: "Tinción intrínseca", Category: "Estética"},
	{State: "tincion_extrinseca", Label: "Tinción extrínseca", Category: "Estética"},
	{State: "blanqueamiento_interno", Label: "Blanqueamiento interno realizado", Category: "Estética"},

	// Otros
	{State: "en_observacion", Label: "En observación", Category: "Otros"},
	{State: "tratamiento_pendiente", Label: "Tratamiento pendiente", Category: "Otros"},
	{State: "derivar_especialista", Label: "Derivar a especialista", Category: "Otros"},
}
