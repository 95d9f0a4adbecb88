package rules

import "github.com/Veraticus/txcat/internal/model"

// Default returns the built-in rule table in priority order. The first rule
// whose pattern matches wins, so anchored and merchant-specific rules sit
// ahead of the broad keyword rules at the end.
func Default() []model.RuleDefinition {
	return []model.RuleDefinition{
		// Whole-line matches.
		{ID: "R001", Pattern: `^\s*PASS\s*$`, Category: "CHARGES_VARIABLES", Subcategory: "TRANSPORTS_COMMUN"},
		{ID: "R002", Pattern: `^\s*TOTAL\b.*`, Category: "CHARGES_VARIABLES", Subcategory: "CARBURANT"},
		// Merchant-specific labels.
		{ID: "R003", Pattern: `Incoming transfer from M PAUL DENHEZ \(FR7616275500000412664270831\)`, Category: "DIVERS", Subcategory: "AJUSTEMENTS_ERREURS"},
		{ID: "R004", Pattern: `Paiement accepté: FR7616275500000412664270831 à DE74502109007020623696`, Category: "DIVERS", Subcategory: "AJUSTEMENTS_ERREURS"},
		{ID: "R005", Pattern: `\bAMAZON\.FR\*[A-Z0-9]+`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R006", Pattern: `Incoming transfer from Paul Denhez \(FR802043302626N269793476611\)`, Category: "DIVERS", Subcategory: "AJUSTEMENTS_ERREURS"},
		{ID: "R007", Pattern: `Incoming transfer from M PAUL DENHEZ`, Category: "DIVERS", Subcategory: "AJUSTEMENTS_ERREURS"},
		{ID: "R008", Pattern: `GARFO - FOOD & BEVERAGE\.`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R009", Pattern: `CARRIS - RUA 1 MAIO,-00`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R010", Pattern: `NESPRESSO FRANCE S\.A\.S\.`, Category: "ACHATS", Subcategory: "CAFE"},
		{ID: "R011", Pattern: `LS LA COUR DE LA CHTI`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R012", Pattern: `SNC LE BIENVENU 4069410`, Category: "ACHATS", Subcategory: "TABAC"},
		{ID: "R013", Pattern: `Metropolitano de Lisboa`, Category: "CHARGES_VARIABLES", Subcategory: "TRANSPORTS_COMMUN"},
		{ID: "R014", Pattern: `NYX\*LILLEAUTOMATIQUEDIST`, Category: "ACHATS", Subcategory: "CAFE"},
		{ID: "R015", Pattern: `PHAR BOURGMAYER 4194069`, Category: "SANTE", Subcategory: "PHARMACIE"},
		{ID: "R016", Pattern: `Association Ruban Rose`, Category: "DIVERS", Subcategory: "DONS"},
		{ID: "R017", Pattern: `Cash reward allocation`, Category: "DIVERS", Subcategory: "AJUSTEMENTS_ERREURS"},
		{ID: "R018", Pattern: `NYX\*VALENCIENNESPLACEDA`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R019", Pattern: `PHARMACIE VALS 2151306`, Category: "SANTE", Subcategory: "AUTRE_MEDECINE"},
		{ID: "R020", Pattern: `PICARD SA 335 4998985`, Category: "ALIMENTATION", Subcategory: "COURSES"},
		{ID: "R021", Pattern: `BAR BILTOKI HALLES D`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R022", Pattern: `CONTIN BOM DIA LISBO`, Category: "ALIMENTATION", Subcategory: "COURSES"},
		{ID: "R023", Pattern: `Your Saveback payment`, Category: "DIVERS", Subcategory: "AJUSTEMENTS_ERREURS"},
		{ID: "R024", Pattern: `ELECTRO DEPOT FRANCE`, Category: "MAISON", Subcategory: "EQUIPEMENT_ELECTROMENAGER"},
		{ID: "R025", Pattern: `LISBON DUTY FREE T2`, Category: "LOISIRS", Subcategory: "VACANCES_WEEKENDS"},
		{ID: "R026", Pattern: `CIVETTE DE LA TOUR`, Category: "ACHATS", Subcategory: "TABAC"},
		{ID: "R027", Pattern: `MIGUEL CASTRO-SILVA`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R028", Pattern: `PADEL FOOTBALL CLUB`, Category: "LOISIRS", Subcategory: "SPORT"},
		{ID: "R029", Pattern: `RELAY TRIBS 4116230`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R030", Pattern: `RESTAURANTE FERNANDO`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R031", Pattern: `4PADEL Valenciennes`, Category: "LOISIRS", Subcategory: "SPORT"},
		{ID: "R032", Pattern: `CONTINENTE BOM DIA`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R033", Pattern: `COURIR VALENCIENNES`, Category: "ACHATS", Subcategory: "VETEMENTS"},
		{ID: "R034", Pattern: `FERME DU PONT DES`, Category: "ALIMENTATION", Subcategory: "COURSES"},
		{ID: "R035", Pattern: `GRAND FRAIS AULNOY`, Category: "ALIMENTATION", Subcategory: "COURSES"},
		{ID: "R036", Pattern: `MCDONALDS AEROPORTO`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R037", Pattern: `MGP\*Le Pot Commun`, Category: "ACHATS", Subcategory: "CADEAUX"},
		{ID: "R038", Pattern: `GELATOMANIA NAZARE`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R039", Pattern: `LE CYRANO 4266161`, Category: "ACHATS", Subcategory: "TABAC"},
		{ID: "R040", Pattern: `LE JUBILE 4357453`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R041", Pattern: `BIE DE LA HALLE`, Category: "ALIMENTATION", Subcategory: "BOUCHERIE"},
		{ID: "R042", Pattern: `E0022API EDS ONE`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R043", Pattern: `PADEL FOOTBALL C`, Category: "LOISIRS", Subcategory: "SPORT"},
		{ID: "R044", Pattern: `PASTEIS DE BELEM`, Category: "ALIMENTATION", Subcategory: "COURSES"},
		{ID: "R045", Pattern: `SHIFU RAMEN REST`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R046", Pattern: `SumUp \*SBCONCEPT`, Category: "ACHATS", Subcategory: "SOIN DE LA PERSONNE"},
		{ID: "R047", Pattern: `TERRACO EDITORIAL`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R048", Pattern: `Interest payment`, Category: "BANQUE", Subcategory: "INTERETS"},
		{ID: "R049", Pattern: `MCDONALDS CHIADO`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R050", Pattern: `SnP\*SPEED PIZZA`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R051", Pattern: `BEER EXPERIENCE`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R052", Pattern: `CHEZ MON VIEUX`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R053", Pattern: `DCTR MARGUERITT`, Category: "SANTE", Subcategory: "MEDECIN"},
		{ID: "R054", Pattern: `GD FRAIS SENTI`, Category: "ALIMENTATION", Subcategory: "COURSES"},
		{ID: "R055", Pattern: `MA DUQUE LOULE`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R056", Pattern: `SINTRA LRO TVM`, Category: "CHARGES_VARIABLES", Subcategory: "TRANSPORTS_COMMUN"},
		{ID: "R057", Pattern: `APPLE\.COM/BILL`, Category: "CHARGES_FIXES", Subcategory: "ABONNEMENTS_FIXES"},
		{ID: "R058", Pattern: `DELEBARRE VINS`, Category: "ACHATS", Subcategory: "CADEAUX"},
		{ID: "R059", Pattern: `EURL A MOREAU`, Category: "ALIMENTATION", Subcategory: "BOULANGERIE"},
		{ID: "R060", Pattern: `FERME DU SART`, Category: "ALIMENTATION", Subcategory: "COURSES"},
		{ID: "R061", Pattern: `M'MA TURINETTI`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R062", Pattern: `MARIE BLACHERE`, Category: "ALIMENTATION", Subcategory: "COURSES"},
		{ID: "R063", Pattern: `SINTRA TERRACE`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R064", Pattern: `TIME OUT SHOP`, Category: "LOISIRS", Subcategory: "VACANCES_WEEKENDS"},
		{ID: "R065", Pattern: `VINS GOURMANDS`, Category: "ACHATS", Subcategory: "VIN"},
		{ID: "R066", Pattern: `WEB TENNIS SC`, Category: "LOISIRS", Subcategory: "SPORT"},
		{ID: "R067", Pattern: `SUR LE POUCE`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R068", Pattern: `Zettle_\*Sahil`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R069", Pattern: `LE LONGCHAMP`, Category: "ACHATS", Subcategory: "TABAC"},
		{ID: "R070", Pattern: `MAISON RINC`, Category: "ACHATS", Subcategory: "CADEAUX"},
		{ID: "R071", Pattern: `SAS BONDUWE`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R072", Pattern: `SPEED PIZZA`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R073", Pattern: `TCE 4332548`, Category: "LOISIRS", Subcategory: "SPORT"},
		{ID: "R074", Pattern: `VAL VIANDES`, Category: "ALIMENTATION", Subcategory: "BOUCHERIE"},
		{ID: "R075", Pattern: `CAFES REMY`, Category: "ACHATS", Subcategory: "CAFE"},
		{ID: "R076", Pattern: `INTERMARCHE`, Category: "ALIMENTATION", Subcategory: "COURSES"},
		{ID: "R077", Pattern: `LE VALENCY`, Category: "ACHATS", Subcategory: "TABAC"},
		{ID: "R078", Pattern: `VINI LILLE`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R079", Pattern: `SP WILDDE`, Category: "ACHATS", Subcategory: "SOIN DE LA PERSONNE"},
		{ID: "R080", Pattern: `RIGOLETTO`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R081", Pattern: `SAS BETA`, Category: "ALIMENTATION", Subcategory: "BOULANGERIE"},
		{ID: "R082", Pattern: `EL GANA`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R083", Pattern: `O TERA`, Category: "ALIMENTATION", Subcategory: "COURSES"},
		{ID: "R084", Pattern: `CHOOSE`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R085", Pattern: `MYTHOS`, Category: "ALIMENTATION", Subcategory: "RESTAURANTS"},
		{ID: "R086", Pattern: `OXYBUL`, Category: "ACHATS", Subcategory: "CADEAUX"},
		{ID: "R087", Pattern: `VPC`, Category: "ACHATS", Subcategory: "CAFE"},
		// Broad keyword rules.
		{ID: "R088", Pattern: `\bSAVINGS PLAN EXECUTION\b.*`, Category: "EPARGNE", Subcategory: "INVESTISSEMENTS"},
		{ID: "R089", Pattern: `\bAMAZON PAYMENTS\b.*`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R090", Pattern: `\bALIM CARREFOUR\b.*`, Category: "ALIMENTATION", Subcategory: "COURSES"},
		{ID: "R091", Pattern: `\bAMAZON EU SARL\b.*`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R092", Pattern: `\bAMAZON PRIME\b.*`, Category: "CHARGES_FIXES", Subcategory: "ABONNEMENTS_FIXES"},
		{ID: "R093", Pattern: `\bLEROY MERLIN\b.*`, Category: "MAISON", Subcategory: "BRICOLAGE"},
		{ID: "R094", Pattern: `\bAMZN MKTP\b.*`, Category: "ACHATS", Subcategory: "DIVERS"},
		{ID: "R095", Pattern: `\bZENPARK\b.*`, Category: "CHARGES_VARIABLES", Subcategory: "STATIONNEMENT_PEAGES"},
	}
}
