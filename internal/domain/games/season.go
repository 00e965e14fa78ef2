package games

// SeasonType labels the phase of the season a game belongs to.
type SeasonType string

const (
	SeasonPre       SeasonType = "pre-season"
	SeasonRegular   SeasonType = "regular-season"
	SeasonPost      SeasonType = "post-season"
	SeasonSuperBowl SeasonType = "superbowl"
	SeasonUnknown   SeasonType = "unknown"
)

var seasonTypeCodes = map[int]SeasonType{
	1: SeasonPre,
	2: SeasonRegular,
	3: SeasonPost,
	4: SeasonSuperBowl,
}

// SeasonTypeFromCode maps the upstream numeric season type. Unlisted codes are SeasonUnknown.
func SeasonTypeFromCode(code int) SeasonType {
	if st, ok := seasonTypeCodes[code]; ok {
		return st
	}
	return SeasonUnknown
}
