package sentiment

// valence assigns a polarity in [-1, 1] to words that commonly carry
// emotional weight in short anonymous messages.
var valence = map[string]float64{
	// strongly negative
	"dead":        -1.0,
	"died":        -1.0,
	"death":       -1.0,
	"devastated":  -1.0,
	"unbearable":  -1.0,
	"grief":       -0.9,
	"heartbroken": -0.9,
	"gone":        -0.8,
	"funeral":     -0.8,
	"lost":        -0.7,
	"crying":      -0.7,
	"cried":       -0.7,
	"hate":        -0.7,
	"destroyed":   -0.7,
	"worst":       -0.7,

	// negative
	"miss":       -0.5,
	"missing":    -0.5,
	"regret":     -0.5,
	"sorry":      -0.4,
	"hurt":       -0.5,
	"hurts":      -0.5,
	"pain":       -0.5,
	"sad":        -0.5,
	"lonely":     -0.5,
	"alone":      -0.4,
	"afraid":     -0.4,
	"scared":     -0.4,
	"angry":      -0.5,
	"mad":        -0.4,
	"broken":     -0.5,
	"failed":     -0.5,
	"failure":    -0.5,
	"mistake":    -0.4,
	"wish":       -0.3,
	"goodbye":    -0.3,
	"hard":       -0.3,
	"difficult":  -0.3,
	"tired":      -0.3,
	"empty":      -0.4,
	"ashamed":    -0.5,
	"guilty":     -0.5,
	"jealous":    -0.4,
	"worried":    -0.3,
	"cry":        -0.5,

	// mildly positive
	"hope":      0.1,
	"hoping":    0.1,
	"someday":   0.1,
	"maybe":     0.05,
	"better":    0.2,
	"okay":      0.1,
	"fine":      0.1,
	"try":       0.1,
	"trying":    0.1,
	"forward":   0.15,
	"heal":      0.2,
	"healing":   0.2,
	"peace":     0.3,
	"calm":      0.2,

	// positive
	"thank":     0.4,
	"thanks":    0.4,
	"thankful":  0.45,
	"grateful":  0.45,
	"gratitude": 0.45,
	"appreciate": 0.4,
	"kind":      0.4,
	"kindness":  0.4,
	"good":      0.3,
	"great":     0.4,
	"happy":     0.45,
	"glad":      0.4,
	"proud":     0.4,
	"warm":      0.3,
	"smile":     0.35,
	"gave":      0.2,
	"helped":    0.35,

	// strongly positive
	"love":      0.8,
	"loved":     0.8,
	"loving":    0.8,
	"adore":     0.9,
	"beautiful": 0.7,
	"wonderful": 0.8,
	"amazing":   0.8,
	"best":      0.7,
	"forever":   0.5,
	"always":    0.4,
	"cherish":   0.8,
	"joy":       0.7,
	"heart":     0.3,
	"soulmate":  0.9,
}
