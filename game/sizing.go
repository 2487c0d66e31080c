package game

// SizePolicy maps a level to the side length of its square maze.
type SizePolicy struct {
	Base int // Side length of levels 1 and 2
	Step int // Growth applied every two levels
	Max  int // Upper bound on the side length
}

// DefaultSizePolicy starts at 12x12 and grows by 2 every two levels up to 20x20.
func DefaultSizePolicy() SizePolicy {
	return SizePolicy{Base: 12, Step: 2, Max: 20}
}

// SizeForLevel returns the side length for level. Levels below 1 count as level 1.
func (s SizePolicy) SizeForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return min(s.Base+((level-1)/2)*s.Step, s.Max)
}
