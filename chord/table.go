package chord

// Table maps a chord label to its spelling, root first.
var Table = newTable(map[string][]string{
	"Amaj":        {"A", "C#", "E"},
	"A#dim":       {"A#", "C#", "E"},
	"A#m":         {"A#", "C#", "E#"},
	"Abmaj":       {"Ab", "C", "Eb"},
	"Abm":         {"Ab", "B", "Eb"},
	"Abdim":       {"Ab", "B", "D"},
	"Adim":        {"A", "C", "Eb"},
	"Am":          {"A", "C", "E"},
	"Bmaj":        {"B", "D#", "F#"},
	"B#dim":       {"B#", "D#", "F#"},
	"Bbmaj":       {"Bb", "D", "F"},
	"Bbdim":       {"Bb", "Db", "E"},
	"Bbm":         {"Bb", "Db", "F"},
	"Bdim":        {"B", "D", "F"},
	"Bm":          {"B", "D", "F#"},
	"Cmaj":        {"C", "E", "G"},
	"C#maj":       {"C#", "E#", "G#"},
	"C#dim":       {"C#", "E", "G"},
	"C#m":         {"C#", "E", "G#"},
	"Cbdim":       {"Cb", "E", "G"},
	"Cbmaj":       {"Cb", "Eb", "Gb"},
	"Cdim":        {"C", "Eb", "Gb"},
	"Cm":          {"C", "Eb", "G"},
	"Dmaj":        {"D", "F#", "A"},
	"D#dim":       {"D#", "F#", "A"},
	"D#m":         {"D#", "F#", "A#"},
	"Dbmaj":       {"Db", "F", "Ab"},
	"Dbdim":       {"Db", "Fb", "G"},
	"Dbm":         {"Db", "E", "Ab"},
	"Ddim":        {"D", "F", "Ab"},
	"Dm":          {"D", "F", "A"},
	"Emaj":        {"E", "G#", "B"},
	"E#dim":       {"E#", "G#", "B"},
	"E#m":         {"E#", "G#", "B#"},
	"Ebmaj":       {"Eb", "G", "Bb"},
	"Ebm":         {"Eb", "Gb", "Bb"},
	"Ebdim":       {"Eb", "Gb", "A"},
	"Edim":        {"E", "G", "Bb"},
	"Em":          {"E", "G", "B"},
	"Fmaj":        {"F", "A", "C"},
	"F#maj":       {"F#", "A#", "C#"},
	"F#dim":       {"F#", "A", "C"},
	"F#m":         {"F#", "A", "C#"},
	"Fbmaj":       {"Fb", "Ab", "Cb"},
	"Fbdim":       {"Fb", "G", "Bb"},
	"Fdim":        {"F", "Ab", "B"},
	"Fm":          {"F", "Ab", "C"},
	"Gmaj":        {"G", "B", "D"},
	"G#maj":       {"G#", "B#", "D#"},
	"G#dim":       {"G#", "B", "D"},
	"G#m":         {"G#", "B", "D#"},
	"Gbmaj":       {"Gb", "Bb", "Db"},
	"Gbdim":       {"Gb", "A", "C"},
	"Gdim":        {"G", "Bb", "Db"},
	"Gbm":         {"Gb", "A", "Db"},
	"Gm":          {"G", "Bb", "D"},
	"Cmaj7":       {"C", "E", "G", "B"},
	"Dmaj7":       {"D", "F#", "A", "C#"},
	"Emaj7":       {"E", "G#", "B", "D#"},
	"Fmaj7":       {"F", "A", "C", "E"},
	"Gmaj7":       {"G", "B", "D", "F#"},
	"Amaj7":       {"A", "C#", "E", "G#"},
	"Bmaj7":       {"B", "D#", "F#", "A#"},
	"C#maj7":      {"C#", "E#", "G#", "B#"},
	"F#maj7":      {"F#", "A#", "C#", "E#"},
	"Abmaj7":      {"Ab", "C", "Eb", "G"},
	"Bbmaj7":      {"Bb", "D", "F", "A"},
	"Cbmaj7":      {"Cb", "Eb", "Gb", "Bb"},
	"Dbmaj7":      {"Db", "F", "Ab", "C"},
	"Ebmaj7":      {"Eb", "G", "Bb", "D"},
	"Fbmaj7":      {"Fb", "Ab", "Cb", "Eb"},
	"Gbmaj7":      {"Gb", "Bb", "Db", "F"},
	"Dm7":         {"D", "F", "A", "C"},
	"Em7":         {"E", "G", "B", "D"},
	"F#m7":        {"F#", "A", "C#", "E"},
	"Gm7":         {"G", "Bb", "D", "F"},
	"Am7":         {"A", "C", "E", "G"},
	"Bm7":         {"B", "D", "F#", "A"},
	"C#m7":        {"C#", "E", "G#", "B"},
	"D#m7":        {"D#", "F#", "A#", "C#"},
	"G#m7":        {"G#", "B", "D#", "F#"},
	"Bbm7":        {"Bb", "Db", "F", "Ab"},
	"Cm7":         {"C", "Eb", "G", "Bb"},
	"Dbm7":        {"Db", "E", "Ab", "Cb"},
	"Ebm7":        {"Eb", "Gb", "Bb", "Db"},
	"Fm7":         {"F", "Ab", "C", "Eb"},
	"E#m7":        {"E#", "G#", "B#", "D#"},
	"A#m7":        {"A#", "C#", "E#", "G#"},
	"Abm7":        {"Ab", "B", "Eb", "Gb"},
	"Am7b5":       {"A", "C", "Eb", "G"},
	"Bm7b5":       {"B", "D", "F", "A"},
	"Cm7b5":       {"C", "Eb", "Gb", "Bb"},
	"C#m7b5":      {"C#", "E", "G", "B"},
	"Dm7b5":       {"D", "F", "Ab", "C"},
	"Ebm7b5":      {"Eb", "Gb", "A", "Db"},
	"Em7b5":       {"E", "G", "Bb", "D"},
	"Fm7b5":       {"F", "Ab", "B", "Eb"},
	"F#m7b5":      {"F#", "A", "C", "E"},
	"Gm7b5":       {"G", "Bb", "Db", "F"},
	"Abm7b5":      {"Ab", "B", "D", "Gb"},
	"A#m7b5":      {"A#", "C#", "E", "G#"},
	"Bbm7b5":      {"Bb", "Db", "E", "Ab"},
	"C7":          {"C", "E", "G", "Bb"},
	"D7":          {"D", "F#", "A", "C"},
	"E7":          {"E", "G#", "B", "D"},
	"F7":          {"F", "A", "C", "Eb"},
	"G7":          {"G", "B", "D", "F"},
	"A7":          {"A", "C#", "E", "G"},
	"B7":          {"B", "D#", "F#", "A"},
	"C#7":         {"C#", "E#", "G#", "B"},
	"D#7":         {"D#", "F##", "A#", "C#"},
	"F#7":         {"F#", "A#", "C#", "E"},
	"G#7":         {"G#", "B#", "D#", "F#"},
	"Ab7":         {"Ab", "C", "Eb", "Gb"},
	"Bb7":         {"Bb", "D", "F", "Ab"},
	"Cb7":         {"Cb", "Eb", "Gb", "A"},
	"Db7":         {"Db", "F", "Ab", "Cb"},
	"Eb7":         {"Eb", "G", "Bb", "Db"},
	"Fb7":         {"Fb", "Ab", "Cb", "E"},
	"Gb7":         {"Gb", "Bb", "Db", "F"},
	"Bhalf-dim7":  {"B", "D", "F", "A"},
	"C#half-dim7": {"C#", "E", "G", "B"},
	"D#half-dim7": {"D#", "F#", "A", "C#"},
	"Ehalf-dim7":  {"E", "G", "Bb", "D"},
	"F#half-dim7": {"F#", "A", "C", "E"},
	"G#half-dim7": {"G#", "B", "D", "F#"},
	"A#half-dim7": {"A#", "C#", "E", "G#"},
	"B#half-dim7": {"B#", "D#", "F#", "A#"},
	"E#half-dim7": {"E#", "G#", "B", "D#"},
	"Ghalf-dim7":  {"G", "Bb", "Db", "F"},
	"Ahalf-dim7":  {"A", "C", "Eb", "G"},
	"Bbhalf-dim7": {"Bb", "Db", "Fb", "Ab"},
	"Chalf-dim7":  {"C", "Eb", "Gb", "Bb"},
	"Dhalf-dim7":  {"D", "F", "Ab", "C"},
	"Fhalf-dim7":  {"F", "Ab", "Cb", "Eb"},
	"Adom7":       {"A", "C#", "E", "G"},
	"Bdom7":       {"B", "D#", "F#", "A"},
	"Cdom7":       {"C", "E", "G", "Bb"},
	"Ddom7":       {"D", "F#", "A", "C"},
	"Fdom7":       {"F", "A", "C", "Eb"},
	"Gdom7":       {"G", "B", "D", "F"},
	"C#dom7":      {"C#", "E#", "G#", "B"},
	"F#dom7":      {"F#", "A#", "C#", "E"},
	"G#dom7":      {"G#", "B#", "D#", "F#"},
	"Abdom7":      {"Ab", "C", "Eb", "Gb"},
	"Bbdom7":      {"Bb", "D", "F", "Ab"},
	"Dbdom7":      {"Db", "F", "Ab", "Cb"},
	"Ebdom7":      {"Eb", "G", "Bb", "Db"},
	"Gbdom7":      {"Gb", "Bb", "Db", "Fb"},
})
