package dino

// Judge ends the run when the actor overlaps the obstacle.
// It reports true only on the tick the run ends.
func Judge(w *World) bool {
	if w.Dead || !w.Actor.Intersects(w.Obstacle) {
		return false
	}

	w.Dead = true
	w.GameOver = true
	if w.Score > w.HighScore {
		w.HighScore = w.Score
	}

	// Death animation starts from its first frame
	w.FrameIndex = 0
	w.FrameTimer = 0
	return true
}
