package timeline

import "part-tracker/core/models"

// StageDefinition describes one fixed step of the part change workflow
type StageDefinition struct {
	Name              string
	Department        string
	Assignee          string
	Notes             string
	EstimatedDuration string
}

// Stage indexes into Stages
const (
	StageRequest = iota
	StageDrawing
	StagePartList
	StagePricing
	StageROHS
	StagePurchaseOrder
	StageBOM
	StageMeasurement
	StageEvaluation
	StageLineTrial
	StageApproval
)

// Stages is the ordered 11-step workflow every part goes through
var Stages = [...]StageDefinition{
	StageRequest:       {Name: "TEN PART FROM SEC", Department: "PART ENGINEERING", Assignee: "John Smith", Notes: "Initial part request submitted and approved", EstimatedDuration: "2 hours"},
	StageDrawing:       {Name: "Drawing Part", Department: "PART ENGINEERING", Assignee: "Sarah Johnson", Notes: "Technical drawings in progress", EstimatedDuration: "8 hours"},
	StagePartList:      {Name: "TEN Part List", Department: "PRODUCT ENGINEERING", Assignee: "Mike Davis", Notes: "Waiting for drawing completion", EstimatedDuration: "4 hours"},
	StagePricing:       {Name: "Price Part", Department: "COST CONTROL", Assignee: "Lisa Chen", Notes: "Cost analysis pending", EstimatedDuration: "6 hours"},
	StageROHS:          {Name: "ROHS", Department: "PART ENGINEERING", Assignee: "Tom Wilson", Notes: "Environmental compliance check", EstimatedDuration: "3 hours"},
	StagePurchaseOrder: {Name: "PO", Department: "PURCHASING", Assignee: "Anna Brown", Notes: "Purchase order creation", EstimatedDuration: "2 hours"},
	StageBOM:           {Name: "BOM", Department: "GNS+ SYSTEM", Assignee: "System Auto", Notes: "Bill of materials generation", EstimatedDuration: "1 hour"},
	StageMeasurement:   {Name: "PART DIMENSION MEASUREMENT", Department: "PART ENGINEERING", Assignee: "Robert Lee", Notes: "Physical measurements and validation", EstimatedDuration: "4 hours"},
	StageEvaluation:    {Name: "EVALUATION REPORT", Department: "PRODUCT ENGINEERING", Assignee: "Emily White", Notes: "Quality evaluation report", EstimatedDuration: "6 hours"},
	StageLineTrial:     {Name: "LINE TRIAL INFORMATION SHEET", Department: "PART ENGINEERING", Assignee: "David Kim", Notes: "Production line trial documentation", EstimatedDuration: "3 hours"},
	StageApproval:      {Name: "PART APPROVAL CONFIRMATION", Department: "PART ENGINEERING", Assignee: "Jennifer Taylor", Notes: "Final approval and sign-off", EstimatedDuration: "2 hours"},
}

// StageOverride replaces the status of one stage
type StageOverride struct {
	Index  int
	Status models.StageStatus
}

// StatusRule describes how a part status maps onto the stage list
type StatusRule struct {
	Progress     int
	CurrentStage int
	Overrides    []StageOverride
	// CompleteAll marks every stage completed and stamps it with the derivation time.
	CompleteAll bool
}

// defaultRule applies to unset and unrecognized statuses
var defaultRule = StatusRule{Progress: 9, CurrentStage: StageRequest}

// statusRules is keyed by the stored part status. completed and on_hold are
// intentionally absent and fall back to defaultRule.
var statusRules = map[models.PartStatus]StatusRule{
	models.PartStatusInitiated: {
		Progress:     13,
		CurrentStage: StageDrawing,
		Overrides: []StageOverride{
			{Index: StageDrawing, Status: models.StageStatusActive},
		},
	},
	models.PartStatusPending: {
		Progress:     27,
		CurrentStage: StagePricing,
		Overrides: []StageOverride{
			{Index: StageDrawing, Status: models.StageStatusCompleted},
			{Index: StagePartList, Status: models.StageStatusCompleted},
			{Index: StagePricing, Status: models.StageStatusActive},
		},
	},
	models.PartStatusApproved: {
		Progress:     100,
		CurrentStage: StageApproval,
		CompleteAll:  true,
	},
	models.PartStatusRejected: {
		Progress:     9,
		CurrentStage: StageRequest,
		Overrides: []StageOverride{
			{Index: StageRequest, Status: models.StageStatusDelayed},
		},
	},
}

// RuleFor returns the rule applied to status, falling back to the default rule
func RuleFor(status models.PartStatus) StatusRule {
	if rule, ok := statusRules[status]; ok {
		return rule
	}
	return defaultRule
}
