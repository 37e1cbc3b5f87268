package engine

// recomputeRates derives passive rates from scratch. Boosts are summed in
// catalog order so the result does not depend on purchase order.
func (e *Engine) recomputeRates() {
	balance := e.catalog.Balance()
	harmony := balance.BaseHarmonyRate
	essence := balance.BaseEssenceRate

	for _, upgrade := range e.catalog.Upgrades() {
		if e.owned[upgrade.ID] {
			harmony += upgrade.HarmonyBoost
			essence += upgrade.EssenceBoost
		}
	}

	e.state.HarmonyRate = harmony
	e.state.EssenceRate = essence
}

// Rates returns the current passive harmony and essence rates per second
func (e *Engine) Rates() (harmony, essence float64) {
	return e.state.HarmonyRate, e.state.EssenceRate
}
