package runner

import "testing"

func TestSimulateIdleEndsInCollision(t *testing.T) {
	st := Simulate(NewSeeded(testConfig(), 1), 5000, 16, 0)

	if !st.GameOver {
		t.Fatal("an idle player should be caught")
	}
	if st.Frames >= 5000 {
		t.Errorf("Frames = %d, expected the run to stop early", st.Frames)
	}
	if st.Score != 0 {
		t.Errorf("Score = %d, expected 0: the first enemy catches an idle player", st.Score)
	}
}

func TestSimulateFrameBudget(t *testing.T) {
	st := Simulate(NewSeeded(testConfig(), 1), 50, 16, 0)

	if st.Frames != 50 || st.GameOver {
		t.Errorf("Simulate() = %+v, expected 50 live frames", st)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a := Simulate(NewSeeded(testConfig(), 99), 4000, 16, 40)
	b := Simulate(NewSeeded(testConfig(), 99), 4000, 16, 40)

	if a != b {
		t.Errorf("same seed gave %+v and %+v", a, b)
	}
}
