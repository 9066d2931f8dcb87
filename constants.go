package mcda

// roundPlaces is the decimal precision applied to every sum, capacity,
// excess, and transfer amount in the t-dominance tester, absorbing
// floating-point drift per spec (§4.6 / §9 "Floating-point policy").
const roundPlaces = 8

// cycleDepthLimit bounds the preference-graph DFS used by the cycle check
// to cycles of length <= cycleDepthLimit, matching the reference
// implementation's bounded search (two intermediate hops).
const cycleDepthLimit = 3
