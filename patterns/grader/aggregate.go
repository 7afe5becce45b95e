package grader

// Aggregate returns the weighted composite of the four scores:
//
//	relevance*0.3 + grammar*0.2 + structure*0.2 + depth*0.3
func Aggregate(scores Scores) float64 {
	return scores.Relevance*WeightRelevance +
		scores.Grammar*WeightGrammar +
		scores.Structure*WeightStructure +
		scores.Depth*WeightDepth
}
