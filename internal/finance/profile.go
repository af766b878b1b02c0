package finance

// Frequency of a dynamic financial entry.
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// FinancialEntry is a user-named line item added on top of the predefined
// questionnaire fields.
type FinancialEntry struct {
	Label     string    `json:"type"`
	Amount    Amount    `json:"amount"`
	Frequency Frequency `json:"frequency"`
}

// LoanType enumeration.
type LoanType string

const (
	LoanHome      LoanType = "Home"
	LoanPersonal  LoanType = "Personal"
	LoanVehicle   LoanType = "Vehicle"
	LoanEducation LoanType = "Education"
	LoanGold      LoanType = "Gold"
	LoanOther     LoanType = "Other"
)

// Loan is an outstanding borrowing. EMI and interest expense are always
// derived, never stored.
type Loan struct {
	LoanType        LoanType `json:"loan_type"`
	Name            string   `json:"name"`
	PrincipalAmount Amount   `json:"principal_amount"`
	InterestRate    Amount   `json:"interest_rate"`
	TenureMonths    int      `json:"tenure_months"`
}

// MonthlyEMI returns the reducing-balance monthly installment.
func (l Loan) MonthlyEMI() float64 {
	return EMI(l.PrincipalAmount.Float64(), l.InterestRate.Float64(), l.TenureMonths)
}

// YearlyInterest returns the interest portion of one year of payments.
func (l Loan) YearlyInterest() float64 {
	return YearlyInterestExpense(l.PrincipalAmount.Float64(), l.InterestRate.Float64(), l.TenureMonths)
}

// InvestmentType enumeration for fixed-income instruments.
type InvestmentType string

const (
	InvestmentFD         InvestmentType = "FD"
	InvestmentRD         InvestmentType = "RD"
	InvestmentBonds      InvestmentType = "Bonds"
	InvestmentDebentures InvestmentType = "Debentures"
	InvestmentOther      InvestmentType = "Other"
)

// InterestInvestment is a fixed-income holding earning simple yearly interest.
type InterestInvestment struct {
	Name            string         `json:"name"`
	InvestmentType  InvestmentType `json:"investment_type"`
	PrincipalAmount Amount         `json:"principal_amount"`
	InterestRate    Amount         `json:"interest_rate"`
}

// YearlyInterest returns the simple interest earned per year.
func (i InterestInvestment) YearlyInterest() float64 {
	return InterestIncome(i.PrincipalAmount.Float64(), i.InterestRate.Float64())
}

// Property is a real-estate asset.
type Property struct {
	Name           string `json:"name"`
	EstimatedValue Amount `json:"estimated_value"`
	AreaSqft       Amount `json:"area_sqft"`
}

// ValuePerSqft is 0 when the area is unknown or zero.
func (p Property) ValuePerSqft() float64 {
	return ValuePerSqft(p.EstimatedValue.Float64(), p.AreaSqft.Float64())
}

// VehicleType enumeration.
type VehicleType string

const (
	VehicleTwoWheeler  VehicleType = "2-Wheeler"
	VehicleFourWheeler VehicleType = "4-Wheeler"
)

// Vehicle is an owned vehicle asset, keyed by registration number.
type Vehicle struct {
	VehicleType        VehicleType `json:"vehicle_type"`
	Name               string      `json:"name"`
	RegistrationNumber string      `json:"registration_number"`
	EstimatedValue     Amount      `json:"estimated_value"`
	IsInsured          bool        `json:"is_insured"`
}

// InsuranceType enumeration.
type InsuranceType string

const (
	InsuranceHealth  InsuranceType = "health"
	InsuranceLife    InsuranceType = "life"
	InsuranceVehicle InsuranceType = "vehicle"
)

// InsurancePolicy covers either people (health/life) or a vehicle. The
// insurance amount is the yearly premium.
type InsurancePolicy struct {
	Type            InsuranceType `json:"type"`
	InsuranceAmount Amount        `json:"insurance_amount"`
	CoversSelf      bool          `json:"covers_self"`
	CoversSpouse    bool          `json:"covers_spouse"`
	Dependents      []string      `json:"dependents,omitempty"`
	VehicleType     VehicleType   `json:"vehicle_type,omitempty"`
	VehicleNumber   string        `json:"vehicle_number,omitempty"`
}

// Profile is the full financial questionnaire document. It is a plain value:
// every derived figure is recomputed from the current field values, nothing
// here caches a total. The profile is replaced wholesale on each save and
// deleted as a unit on reset.
type Profile struct {
	// Income, monthly
	RentalIncome1 Amount `json:"rental_income_1"`
	RentalIncome2 Amount `json:"rental_income_2"`

	// Income, yearly
	SalaryIncome    Amount `json:"salary_income"`
	BusinessIncome  Amount `json:"business_income"`
	DividendIncome  Amount `json:"dividend_income"`
	CapitalGains    Amount `json:"capital_gains"`
	Pension         Amount `json:"pension"`
	FreelanceIncome Amount `json:"freelance_income"`
	OtherIncome     Amount `json:"other_income"`

	// Expenses, monthly
	RentExpense      Amount `json:"rent_expense"`
	HouseholdMaid    Amount `json:"household_maid"`
	Groceries        Amount `json:"groceries"`
	FoodDining       Amount `json:"food_dining"`
	Fuel             Amount `json:"fuel"`
	Travel           Amount `json:"travel"`
	Shopping         Amount `json:"shopping"`
	Entertainment    Amount `json:"entertainment"`
	TelecomUtilities Amount `json:"telecom_utilities"`
	Healthcare       Amount `json:"healthcare"`
	Education        Amount `json:"education"`
	OtherExpenses    Amount `json:"other_expenses"`

	// Expenses, yearly premiums
	TermInsurancePremium    Amount `json:"term_insurance"`
	HealthInsurancePremium  Amount `json:"health_insurance"`
	VehicleInsurancePremium Amount `json:"vehicle_insurance"`

	// Assets, fixed
	GoldValue        Amount `json:"gold_value"`
	SilverValue      Amount `json:"silver_value"`
	StocksValue      Amount `json:"stocks_value"`
	MutualFundsValue Amount `json:"mutual_funds_value"`
	PFNPSValue       Amount `json:"pf_nps_value"`
	BankBalance      Amount `json:"bank_balance"`
	CashInHand       Amount `json:"cash_in_hand"`
	EmergencyFund    Amount `json:"emergency_fund"`

	// Liabilities, fixed
	CreditCardOutstanding Amount `json:"credit_card_outstanding"`

	// Structured sub-entities
	Loans               []Loan               `json:"loans"`
	InterestInvestments []InterestInvestment `json:"interest_investments"`
	Properties          []Property           `json:"properties"`
	Vehicles            []Vehicle            `json:"vehicles"`
	InsurancePolicies   []InsurancePolicy    `json:"insurance_policies"`

	// Dynamic entries
	IncomeEntries    []FinancialEntry `json:"income_entries"`
	ExpenseEntries   []FinancialEntry `json:"expense_entries"`
	AssetEntries     []FinancialEntry `json:"asset_entries"`
	LiabilityEntries []FinancialEntry `json:"liability_entries"`

	// Financial stability flags
	HasHealthInsurance   bool `json:"has_health_insurance"`
	HasTermInsurance     bool `json:"has_term_insurance"`
	InvestsInMutualFunds bool `json:"invests_in_mutual_funds"`
	TakesTDSRefund       bool `json:"takes_tds_refund"`
	HasEmergencyFund     bool `json:"has_emergency_fund"`
	FilesITRYearly       bool `json:"files_itr_yearly"`

	CreditCards       []string `json:"credit_cards"`
	MonthlyInvestment Amount   `json:"monthly_investment"`

	CompletedAt string `json:"completed_at,omitempty"`
}
