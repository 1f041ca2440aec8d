package model

// User is an account. Password is stored and compared verbatim.
type User struct {
	ID          int64    `db:"id"`
	Username    string   `db:"username"`
	Password    string   `db:"password"`
	Age         *int     `db:"age"`
	WeightKg    *float64 `db:"weight"`
	HeightCm    *float64 `db:"height"`
	FitnessGoal *string  `db:"fitness_goal"`
}

func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:          u.ID,
		Username:    u.Username,
		Age:         u.Age,
		WeightKg:    u.WeightKg,
		HeightCm:    u.HeightCm,
		FitnessGoal: u.FitnessGoal,
	}
}
