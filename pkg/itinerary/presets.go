package itinerary

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Presets are the ready-made multi-stage itineraries. They are plain waypoint
// tables; the composer treats them exactly like user supplied waypoints.
var Presets = map[string][]string{
	// Route du soleil en Méditerranée
	"soleil": {"NICE VILLE", "MARSEILLE ST CHARLES", "MONTPELLIER SAINT-ROCH", "AGDE", "BARCELONA SANTS"},
	// Visite de l'Atlantique
	"atlantique": {"BIARITZ", "ARCACHON", "SABLES D'OLONNE", "ST NAZAIRE", "ST MALO"},
	// Les plus grandes villes de France
	"grandes-villes": {"NICE VILLE", "MARSEILLE ST CHARLES", "BORDEAUX ST JEAN", "RENNES", "PARIS MONTPARNASSE", "STRASBOURG", "LYON PART DIEU"},
	// Entre lacs et volcans
	"lacs-volcans": {"AURILLAC", "CLERMONT FERRAND", "AIX LES BAINS LE REVARD", "ANNECY", "LAUSANNE"},
	// Visite culturelle, des cathédrales aux châteaux
	"cathedrales": {"STRASBOURG", "REIMS", "VERSAILLES CHANTIERS", "TOURS", "ANGERS"},
}

func PresetNames() []string {
	names := maps.Keys(Presets)
	sort.Strings(names)

	return names
}
