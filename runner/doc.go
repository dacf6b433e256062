// Package runner is the thin boundary between the grid engine and an
// interactive front end.
//
//   - Run dispatches a search by selector name; unknown names yield an empty
//     Result rather than an error.
//   - RunNoAnimation recomputes a Result on a freshly reset clone (marks
//     cleared, walls and weights kept) and returns the clone annotated with
//     the visited cells and the path.
//   - Playback turns a Result into the timed visit/path frames a renderer
//     replays.
//   - Session owns the current grid and serializes work: at most one search
//     or generation is in flight, a second caller gets ErrBusy. Moving start
//     or end after a completed search recomputes it without animation.
//
// Library packages stay silent; Session logs through an injected
// *zap.Logger and defaults to zap.NewNop().
package runner
