package sim

import "math/rand"

// SpawnGhosts places CopiesPerVariant ghosts of the target and of every decoy
// in random interior lanes. IDs are assigned in spawn order starting at 0.
func SpawnGhosts(spec TargetSpec, rules Rules, rng *rand.Rand) []*Ghost {
	lanes := rules.spawnLanes()
	variants := spec.Variants()
	ghosts := make([]*Ghost, 0, len(variants)*rules.CopiesPerVariant)
	for _, v := range variants {
		for c := 0; c < rules.CopiesPerVariant; c++ {
			ghosts = append(ghosts, &Ghost{
				ID:      len(ghosts),
				Variant: v,
				Lane:    lanes[rng.Intn(len(lanes))],
			})
		}
	}
	return ghosts
}
