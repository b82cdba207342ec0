package scale

// All lists every scale in generation order.
var All = []Scale{
	{"Cmaj", [Degrees]string{"Cmaj", "Dm", "Em", "Fmaj", "Gmaj", "Am", "Bdim"}},
	{"Dmaj", [Degrees]string{"Dmaj", "Em", "F#m", "Gmaj", "Amaj", "Bm", "C#dim"}},
	{"Emaj", [Degrees]string{"Emaj", "F#m", "G#m", "Amaj", "Bmaj", "C#m", "D#dim"}},
	{"Fmaj", [Degrees]string{"Fmaj", "Gm", "Am", "Bbmaj", "Cmaj", "Dm", "Edim"}},
	{"Gmaj", [Degrees]string{"Gmaj", "Am", "Bm", "Cmaj", "Dmaj", "Em", "F#dim"}},
	{"Amaj", [Degrees]string{"Amaj", "Bm", "C#m", "Dmaj", "Emaj", "F#m", "G#dim"}},
	{"Bmaj", [Degrees]string{"Bmaj", "C#m", "D#m", "Emaj", "F#maj", "G#m", "A#dim"}},
	{"C#maj", [Degrees]string{"C#maj", "D#m", "E#m", "F#maj", "G#maj", "A#m", "B#dim"}},
	{"F#maj", [Degrees]string{"F#maj", "G#m", "A#m", "Bmaj", "C#maj", "D#m", "E#dim"}},
	{"Abmaj", [Degrees]string{"Abmaj", "Bbm", "Cm", "Dbmaj", "Ebmaj", "Fm", "Gdim"}},
	{"Bbmaj", [Degrees]string{"Bbmaj", "Cm", "Dm", "Ebmaj", "Fmaj", "Gm", "Adim"}},
	{"Cbmaj", [Degrees]string{"Cbmaj", "Dbm", "Ebm", "Fbmaj", "Gbmaj", "Abm", "Bbdim"}},
	{"Dbmaj", [Degrees]string{"Dbmaj", "Ebm", "Fm", "Gbmaj", "Abmaj", "Bbm", "Cdim"}},
	{"Ebmaj", [Degrees]string{"Ebmaj", "Fm", "Gm", "Abmaj", "Bbmaj", "Cm", "Ddim"}},
	{"Cm", [Degrees]string{"Cm", "Ddim", "Ebmaj", "Fm", "Gm", "Abmaj", "Bbmaj"}},
	{"Dm", [Degrees]string{"Dm", "Edim", "Fmaj", "Gmaj", "Am", "Bbmaj", "Cmaj"}},
	{"Em", [Degrees]string{"Em", "F#dim", "Gmaj", "Am", "Bm", "Cmaj", "Dmaj"}},
	{"Fm", [Degrees]string{"Fm", "Gdim", "Abmaj", "Bbmaj", "Cm", "Dbmaj", "Ebmaj"}},
	{"Gm", [Degrees]string{"Gm", "Adim", "Bbmaj", "Cm", "Dm", "Ebmaj", "Fmaj"}},
	{"Am", [Degrees]string{"Am", "Bdim", "Cmaj", "Dm", "Em", "Fmaj", "Gmaj"}},
	{"Bm", [Degrees]string{"Bm", "C#dim", "Dmaj", "Em", "F#m", "Gmaj", "Amaj"}},
	{"F#m", [Degrees]string{"F#m", "G#dim", "Amaj", "Bm", "C#m", "Dmaj", "Emaj"}},
	{"C#m", [Degrees]string{"C#m", "D#dim", "Emaj", "F#m", "G#m", "Amaj", "Bmaj"}},
	{"G#m", [Degrees]string{"G#m", "A#dim", "Bmaj", "C#m", "D#m", "Emaj", "F#maj"}},
	{"D#m", [Degrees]string{"D#m", "E#dim", "F#maj", "G#m", "A#m", "Bmaj", "C#maj"}},
	{"A#m", [Degrees]string{"A#m", "B#dim", "C#maj", "D#m", "E#m", "F#maj", "G#maj"}},
	{"Bbm", [Degrees]string{"Bbm", "Cdim", "Dbmaj", "Ebm", "Fm", "Gbmaj", "Abmaj"}},
	{"Ebm", [Degrees]string{"Ebm", "Fdim", "Gbmaj", "Abm", "Bbm", "Cbmaj", "Dbmaj"}},
	{"Abm", [Degrees]string{"Abm", "Bbdim", "Cbmaj", "Dbm", "Ebm", "Fbmaj", "Gbmaj"}},
	{"Cmaj7", [Degrees]string{"Cmaj7", "Dm7", "Em7", "Fmaj7", "G7", "Am7", "Bhalf-dim7"}},
	{"Dmaj7", [Degrees]string{"Dmaj7", "Em7", "F#m7", "Gmaj7", "A7", "Bm7", "C#half-dim7"}},
	{"Emaj7", [Degrees]string{"Emaj7", "F#m7", "G#m7", "Amaj7", "B7", "C#m7", "D#half-dim7"}},
	{"Fmaj7", [Degrees]string{"Fmaj7", "Gm7", "Am7", "Bbmaj7", "C7", "Dm7", "Ehalf-dim7"}},
	{"Gmaj7", [Degrees]string{"Gmaj7", "Am7", "Bm7", "Cmaj7", "D7", "Em7", "F#half-dim7"}},
	{"Amaj7", [Degrees]string{"Amaj7", "Bm7", "C#m7", "Dmaj7", "E7", "F#m7", "G#half-dim7"}},
	{"Bmaj7", [Degrees]string{"Bmaj7", "C#m7", "D#m7", "Emaj7", "F#7", "G#m7", "A#half-dim7"}},
	{"C#maj7", [Degrees]string{"C#maj7", "D#m7", "E#m7", "F#maj7", "G#7", "A#m7", "B#half-dim7"}},
	{"F#maj7", [Degrees]string{"F#maj7", "G#m7", "A#m7", "Bmaj7", "C#7", "D#m7", "E#half-dim7"}},
	{"Abmaj7", [Degrees]string{"Abmaj7", "Bbm7", "Cm7", "Dbmaj7", "Eb7", "Fm7", "Ghalf-dim7"}},
	{"Bbmaj7", [Degrees]string{"Bbmaj7", "Cm7", "Dm7", "Ebmaj7", "F7", "Gm7", "Ahalf-dim7"}},
	{"Cbmaj7", [Degrees]string{"Cbmaj7", "Dbm7", "Ebm7", "Fbmaj7", "Gb7", "Abm7", "Bbhalf-dim7"}},
	{"Dbmaj7", [Degrees]string{"Dbmaj7", "Ebm7", "Fm7", "Gbmaj7", "Ab7", "Bbm7", "Chalf-dim7"}},
	{"Ebmaj7", [Degrees]string{"Ebmaj7", "Fm7", "Gm7", "Abmaj7", "Bb7", "Cm7", "Dhalf-dim7"}},
	{"Cm7", [Degrees]string{"Cm7", "Dhalf-dim7", "Ebmaj7", "Fm7", "Gm7", "Abmaj7", "Bbdom7"}},
	{"Dm7", [Degrees]string{"Dm7", "Ehalf-dim7", "Fmaj7", "Gm7", "Am7", "Bbmaj7", "Cdom7"}},
	{"Em7", [Degrees]string{"Em7", "F#half-dim7", "Gmaj7", "Am7", "Bm7", "Cmaj7", "Ddom7"}},
	{"Fm7", [Degrees]string{"Fm7", "Ghalf-dim7", "Abmaj7", "Bbm7", "Cm7", "Dbmaj7", "Ebdom7"}},
	{"Gm7", [Degrees]string{"Gm7", "Ahalf-dim7", "Bbmaj7", "Cm7", "Dm7", "Ebmaj7", "Fdom7"}},
	{"Am7", [Degrees]string{"Am7", "Bhalf-dim7", "Cmaj7", "Dm7", "Em7", "Fmaj7", "Gdom7"}},
	{"Bm7", [Degrees]string{"Bm7", "C#half-dim7", "Dmaj7", "Em7", "F#m7", "Gmaj7", "Adom7"}},
	{"F#m7", [Degrees]string{"F#m7", "G#half-dim7", "Amaj7", "Bm7", "C#m7", "Dmaj7", "E7"}},
	{"C#m7", [Degrees]string{"C#m7", "D#half-dim7", "Emaj7", "F#m7", "G#m7", "Amaj7", "Bdom7"}},
	{"G#m7", [Degrees]string{"G#m7", "A#half-dim7", "Bmaj7", "C#m7", "D#m7", "Emaj7", "F#dom7"}},
	{"D#m7", [Degrees]string{"D#m7", "E#half-dim7", "F#maj7", "G#m7", "A#m7", "Bmaj7", "C#dom7"}},
	{"A#m7", [Degrees]string{"A#m7", "B#half-dim7", "C#maj7", "D#m7", "E#m7", "F#maj7", "G#dom7"}},
	{"Bbm7", [Degrees]string{"Bbm7", "Chalf-dim7", "Dbmaj7", "Ebm7", "Fm7", "Gbmaj7", "Abdom7"}},
	{"Ebm7", [Degrees]string{"Ebm7", "Fhalf-dim7", "Gbmaj7", "Abm7", "Bbm7", "Cbmaj7", "Dbdom7"}},
	{"Abm7", [Degrees]string{"Abm7", "Bbhalf-dim7", "Cbmaj7", "Dbm7", "Ebm7", "Fbmaj7", "Gbdom7"}},
}
