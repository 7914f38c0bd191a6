package inference

// meanPool collapses a [batch, seq, hidden] activation tensor into one
// vector per batch entry by averaging over the sequence axis. Every
// position counts toward the mean, padding included, so two texts of
// different length padded into the same batch divide by the same seq.
// TODO: weight the mean by the attention mask once consumers can re-embed
// their stored vectors; switching silently would shift batch embeddings
// away from everything already persisted.
func meanPool(data []float32, batch, seq, hidden int) [][]float32 {
	vectors := make([][]float32, batch)
	for b := 0; b < batch; b++ {
		vec := make([]float32, hidden)
		base := b * seq * hidden
		for s := 0; s < seq; s++ {
			row := base + s*hidden
			for h := 0; h < hidden; h++ {
				vec[h] += data[row+h]
			}
		}
		inv := 1 / float32(seq)
		for h := 0; h < hidden; h++ {
			vec[h] *= inv
		}
		vectors[b] = vec
	}
	return vectors
}
