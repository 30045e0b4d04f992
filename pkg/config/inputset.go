package config

// PotcarEntry is the expected pseudopotential for one element of an input
// set: the functional-qualified symbol and the data-file hash.
type PotcarEntry struct {
	Symbol string
	Hash   string
}

// InputSet describes a calculation-parameter preset: which pseudopotential
// each element must use and which Hubbard U values apply. Energies are only
// comparable between runs of the same input set.
type InputSet struct {
	// Name identifies the preset, e.g. "MPRelaxSet".
	Name string
	// Potcar maps element symbols to the expected pseudopotential.
	Potcar map[string]PotcarEntry
	// HubbardU maps the most electronegative element of a composition to the
	// per-element U values expected for compositions under that anion.
	HubbardU map[string]map[string]float64
}

var mpRelaxSet = &InputSet{
	Name: "MPRelaxSet",
	Potcar: map[string]PotcarEntry{
		"H":  {Symbol: "H", Hash: "bb43c666e3d36577264afe07669e9582"},
		"Li": {Symbol: "Li_sv", Hash: "8245d7383d7556214082aa40a887cd96"},
		"Be": {Symbol: "Be_sv", Hash: "83e773054bf6d4a17e87d0c9e3a1a3b7"},
		"B":  {Symbol: "B", Hash: "18ed2875dfa6305324cec3d7d59273ae"},
		"C":  {Symbol: "C", Hash: "c0a8167dbb174fe492a3db7f5006c0f8"},
		"N":  {Symbol: "N", Hash: "b98fd027ddebc67da4063ff2c9be1c9e"},
		"O":  {Symbol: "O", Hash: "7a25bc5b9a5393f46600a4939d357982"},
		"F":  {Symbol: "F", Hash: "180141c33d032bfbfff30b3bea9d23dd"},
		"Na": {Symbol: "Na_pv", Hash: "1d0d085f1f30b6b0095a3cb8cbd079ad"},
		"Mg": {Symbol: "Mg_pv", Hash: "1771eb72adbbfa6310d66e7517e49930"},
		"Al": {Symbol: "Al", Hash: "a6fd9a46aec185f4ad2acd0cbe4ae2fa"},
		"Si": {Symbol: "Si", Hash: "b2b0ea6feb62e7cde209616683b8f7f5"},
		"P":  {Symbol: "P", Hash: "7dc3393307131ae67785a0cdacb61d5f"},
		"S":  {Symbol: "S", Hash: "d368db6899d8839859bbee4811a42a88"},
		"Cl": {Symbol: "Cl", Hash: "779b9901046c78fe51c5d80224642aeb"},
		"K":  {Symbol: "K_sv", Hash: "3e84f86d37f203a4fb01de36af57e430"},
		"Ca": {Symbol: "Ca_sv", Hash: "eb006721e214c04b3c13146e81b3a27d"},
		"Ti": {Symbol: "Ti_pv", Hash: "c617e8b539c3f44a0ab6e8da2a92d318"},
		"V":  {Symbol: "V_pv", Hash: "7f1f70525191cd139cb740ee47856de5"},
		"Cr": {Symbol: "Cr_pv", Hash: "7b883ab3d2521a7d04336ebc7d16cb2d"},
		"Mn": {Symbol: "Mn_pv", Hash: "d082dbe4d13d8b625fcdfb2783867e2a"},
		"Fe": {Symbol: "Fe_pv", Hash: "9530da8244e4dac17580869b4adab115"},
		"Co": {Symbol: "Co", Hash: "b169bca4e137294d2ab3df8cbdd09083"},
		"Ni": {Symbol: "Ni_pv", Hash: "1c2e8a935bbb335ad2ac12b5221f20ef"},
		"Cu": {Symbol: "Cu_pv", Hash: "8ca4e43a30de0c397e51f16bbb20d678"},
		"Zn": {Symbol: "Zn", Hash: "e35ee27f8483a63bb68dbc236a343af3"},
		"Se": {Symbol: "Se", Hash: "67a8804ede9f1112726e3d136978ef19"},
		"Br": {Symbol: "Br", Hash: "40f9594b4506684a69158c8975cfb9d6"},
		"Mo": {Symbol: "Mo_pv", Hash: "84e18fd84a98e3d7fa8f055952410df0"},
		"Ag": {Symbol: "Ag", Hash: "e8ffa02fe3f3a51338ac1ac91ae968b9"},
		"Sb": {Symbol: "Sb", Hash: "d82c022b02fc5344e85bd1909f9ee3e7"},
		"Te": {Symbol: "Te", Hash: "72719856e22fb1d3032df6f96d98a0f2"},
		"I":  {Symbol: "I", Hash: "f4ff16a495dd361ff5824ee61b418bb0"},
		"W":  {Symbol: "W_pv", Hash: "2a33e0d5c700640535f60ac0a12177ab"},
	},
	HubbardU: map[string]map[string]float64{
		"O": {
			"Co": 3.32, "Cr": 3.7, "Fe": 5.3, "Mn": 3.9,
			"Mo": 4.38, "Ni": 6.2, "V": 3.25, "W": 6.2,
		},
		"F": {
			"Co": 3.32, "Cr": 3.7, "Fe": 5.3, "Mn": 3.9,
			"Mo": 4.38, "Ni": 6.2, "V": 3.25, "W": 6.2,
		},
	},
}

var mitRelaxSet = &InputSet{
	Name: "MITRelaxSet",
	Potcar: map[string]PotcarEntry{
		"H":  {Symbol: "H", Hash: "bb43c666e3d36577264afe07669e9582"},
		"Li": {Symbol: "Li", Hash: "65e83282d1707ec078c1012afbd05be8"},
		"Be": {Symbol: "Be", Hash: "fb974e44d56a8c62c6bbd1a1eb70c3a7"},
		"B":  {Symbol: "B", Hash: "18ed2875dfa6305324cec3d7d59273ae"},
		"C":  {Symbol: "C", Hash: "c0a8167dbb174fe492a3db7f5006c0f8"},
		"N":  {Symbol: "N", Hash: "b98fd027ddebc67da4063ff2c9be1c9e"},
		"O":  {Symbol: "O", Hash: "7a25bc5b9a5393f46600a4939d357982"},
		"F":  {Symbol: "F", Hash: "180141c33d032bfbfff30b3bea9d23dd"},
		"Na": {Symbol: "Na", Hash: "d09ae8ba4a97c7cf3594fa4318dfa29b"},
		"Mg": {Symbol: "Mg", Hash: "1797a9230dbe29c469bbc1d6339c6c59"},
		"Al": {Symbol: "Al", Hash: "a6fd9a46aec185f4ad2acd0cbe4ae2fa"},
		"Si": {Symbol: "Si", Hash: "b2b0ea6feb62e7cde209616683b8f7f5"},
		"P":  {Symbol: "P", Hash: "7dc3393307131ae67785a0cdacb61d5f"},
		"S":  {Symbol: "S", Hash: "d368db6899d8839859bbee4811a42a88"},
		"Cl": {Symbol: "Cl", Hash: "779b9901046c78fe51c5d80224642aeb"},
		"K":  {Symbol: "K_sv", Hash: "3e84f86d37f203a4fb01de36af57e430"},
		"Ca": {Symbol: "Ca_sv", Hash: "eb006721e214c04b3c13146e81b3a27d"},
		"Ti": {Symbol: "Ti", Hash: "f03f9183f6836f5c5cadfbcba4b0b1fe"},
		"V":  {Symbol: "V_pv", Hash: "7f1f70525191cd139cb740ee47856de5"},
		"Cr": {Symbol: "Cr", Hash: "82c6a6a7d86a4852f289b9b23dfef61a"},
		"Mn": {Symbol: "Mn", Hash: "2d2e23b7d838cd4d07bd5d9b769a00d9"},
		"Fe": {Symbol: "Fe", Hash: "9e631954308df2a00fb679a7c8eea6f7"},
		"Co": {Symbol: "Co", Hash: "b169bca4e137294d2ab3df8cbdd09083"},
		"Ni": {Symbol: "Ni", Hash: "653f5772e68b2c7fd87ffd1086c0d710"},
		"Cu": {Symbol: "Cu", Hash: "8ca4e43a30de0c397e51f16bbb20d678"},
		"Zn": {Symbol: "Zn", Hash: "e35ee27f8483a63bb68dbc236a343af3"},
		"Se": {Symbol: "Se", Hash: "67a8804ede9f1112726e3d136978ef19"},
		"Br": {Symbol: "Br", Hash: "40f9594b4506684a69158c8975cfb9d6"},
		"Nb": {Symbol: "Nb_pv", Hash: "a4a48e4e1429a7b8ed16e66cc6a4ca9d"},
		"Mo": {Symbol: "Mo_pv", Hash: "84e18fd84a98e3d7fa8f055952410df0"},
		"Ag": {Symbol: "Ag", Hash: "e8ffa02fe3f3a51338ac1ac91ae968b9"},
		"Sb": {Symbol: "Sb", Hash: "d82c022b02fc5344e85bd1909f9ee3e7"},
		"Te": {Symbol: "Te", Hash: "72719856e22fb1d3032df6f96d98a0f2"},
		"I":  {Symbol: "I", Hash: "f4ff16a495dd361ff5824ee61b418bb0"},
		"Ta": {Symbol: "Ta", Hash: "ba23cf02cc9038bdce5c04c5ad0b7b20"},
		"W":  {Symbol: "W", Hash: "8ad73b2226ca154b0bfbb4dbd552c280"},
		"Re": {Symbol: "Re", Hash: "2274abef6ad79ae27758aa5a86c533cd"},
	},
	HubbardU: map[string]map[string]float64{
		"O": {
			"Ag": 1.5, "Co": 3.4, "Cr": 3.5, "Cu": 4.0, "Fe": 4.0,
			"Mn": 3.9, "Mo": 4.38, "Nb": 1.5, "Ni": 6.0, "Re": 2.0,
			"Ta": 2.0, "V": 3.1, "W": 4.0,
		},
		"F": {
			"Ag": 1.5, "Co": 3.4, "Cr": 3.5, "Cu": 4.0, "Fe": 4.0,
			"Mn": 3.9, "Mo": 4.38, "Nb": 1.5, "Ni": 6.0, "Re": 2.0,
			"Ta": 2.0, "V": 3.1, "W": 4.0,
		},
	},
}

// MPRelaxSet returns the MPRelaxSet parameter preset. Shared and read-only.
func MPRelaxSet() *InputSet { return mpRelaxSet }

// MITRelaxSet returns the MITRelaxSet parameter preset. Shared and read-only.
func MITRelaxSet() *InputSet { return mitRelaxSet }
