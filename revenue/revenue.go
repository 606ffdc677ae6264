package revenue

// BaselineYield is the estimated annual take, in £ billions, of a 1% tax
// on individual wealth above £10 million. The figure follows the Wealth
// Tax Commission's 2020 static costing.
const BaselineYield = 11.9

// Estimate projects annual revenue in £ billions for a tax rate given in
// percent. The projection is a straight line through the baseline: no
// behavioural response, avoidance or asset-price feedback.
func Estimate(ratePct float64) float64 {
	return BaselineYield * ratePct
}
