package poolinfer

// Cue lists are precision-biased. Keep the exclusion list short.
var (
	exclusionCues = []string{
		"pool table",
		"carpool",
		"pooling",
		"shared pool of",
	}

	negationCues = []string{
		"no pool",
		"without a pool",
		"does not have a pool",
		"doesn't have a pool",
		"not a pool",
	}

	communalCues = []string{
		"community",
		"condo",
		"clubhouse",
		"amenities",
		"fitness",
		"maintenance fees",
		"hoa",
		"gated community",
		"rec centre",
		"recreation centre",
		"indoor pool",
		"shared",
		"residents",
		"membership",
		"facility",
		"common elements",
	}

	privateCues = []string{
		"private",
		"backyard",
		"yard",
		"backyard oasis",
		"pool house",
		"patio",
		"deck",
		"interlocked",
		"landscaped",
		"in ground",
		"inground",
		"in ground pool",
		"in ground swimming pool",
		"saltwater",
		"hot tub",
		"walkout",
		"walk out",
		"fenced",
		"heater",
		"heated",
		"pump",
		"diving board",
		"liner",
		"gazebo",
	}

	inGroundCues = []string{
		"in ground",
		"inground",
		"gunite",
		"concrete",
		"fiberglass",
		"saltwater",
		"lap pool",
		"plunge pool",
		"diving board",
		"pool house",
	}

	aboveGroundCues = []string{
		"above ground",
		"aboveground",
		"portable",
		"inflatable",
		"removable",
	}
)
