package engine

import (
	"connect4/game"

	"github.com/rs/zerolog/log"
)

type Engine[S game.State[S]] struct {
	agents []Agent[S]
}

// Local seats agents in turn order, the first agent moving first.
func Local[S game.State[S]](agents ...Agent[S]) *Engine[S] {
	if len(agents) < 2 {
		panic("need at least two agents")
	}
	return &Engine[S]{agents: agents}
}

// Run plays from start until a player completes four or the board is full.
func (e *Engine[S]) Run(start S) Outcome[S] {
	log.Info().Msgf("player %s is starting", start.Player())

	state := start
	history := []S{start}
	for ply := 0; !state.IsWin() && !state.BoardFull(); ply++ {
		agentIndex := ply % len(e.agents)

		next, ok := e.agents[agentIndex].FindMove(state)
		if !ok || !isLegal(state, next) {
			log.Warn().Int("agent", agentIndex).Msg("agent returned an illegal move, forcing the first legal move")
			next = state.NextStates()[0]
		}
		log.Debug().Int("ply", ply+1).Int("agent", agentIndex).Msgf("player %s moved\n%s", state.Player(), next)

		state = next
		history = append(history, state)
	}

	outcome := Outcome[S]{
		Winner:  game.Empty,
		Plies:   len(history) - 1,
		History: history,
	}
	if state.IsWin() {
		outcome.Winner = state.Player().Next()
	}
	log.Info().Msgf("game over after %d plies with winner: %s", outcome.Plies, outcome.Winner)
	return outcome
}

func isLegal[S game.State[S]](state, next S) bool {
	for _, child := range state.NextStates() {
		if child.Key() == next.Key() {
			return true
		}
	}
	return false
}
