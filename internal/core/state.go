package core

// GameState is a read-only snapshot of a run, handed to hosts after a frame.
type GameState struct {
	Score    int  // Enemies that made it off-screen
	GameOver bool // Latched on the first collision
	Frames   int  // Frame callbacks processed
	Enemies  int  // Live enemies after the last frame
	Spawned  int  // Enemies created since the run started
}
