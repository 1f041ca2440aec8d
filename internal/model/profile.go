package model

// UserProfile is the credential-free view of a User returned by login.
type UserProfile struct {
	ID          int64
	Username    string
	Age         *int
	WeightKg    *float64
	HeightCm    *float64
	FitnessGoal *string
}
