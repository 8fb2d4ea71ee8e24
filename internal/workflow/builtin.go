package workflow

import "github.com/tnakagawa/critpath/internal/model"

// Builtin returns the bundled rubber-to-metal bonding workflow, used
// when no workflow file is given. Three production paths (rubber
// processing, chemical treatment, cleaning/adhesive treatment) converge
// at the assembly stage before the final operations.
func Builtin() *model.Workflow {
	return &model.Workflow{
		Name: "rubber-to-metal bonding",
		Tasks: []model.TaskSpec{
			{Name: "Start", Duration: 0},
			{Name: "Create Work Order", Duration: 2},
			{Name: "Process Rubber Blending", Duration: 10},
			{Name: "Mill Rubber", Duration: 8},
			{Name: "Calendar Rubber Sheets", Duration: 14},
			{Name: "Sandblast Parts", Duration: 10},
			{Name: "Wash Parts for Chemical Treatment", Duration: 2},
			{Name: "Chemical Treatment Group 1", Duration: 6},
			{Name: "Chemical Treatment Group 2", Duration: 10},
			{Name: "Chemical Treatment Group 3", Duration: 4},
			{Name: "Spray Treatment", Duration: 8},
			{Name: "Assemble Components for Injection Molding", Duration: 8},
			{Name: "Clean Outer & Inner Members", Duration: 4},
			{Name: "Special Adhesive Treatment", Duration: 12},
			{Name: "Special Sandblast", Duration: 6},
			{Name: "Wash Parts OM & IM", Duration: 2},
			{Name: "Injection Molding Operation", Duration: 18},
			{Name: "Bond Testing", Duration: 6},
			{Name: "Paint & Finishing", Duration: 14},
			{Name: "Final Inspection", Duration: 6},
			{Name: "Packaging", Duration: 6},
			{Name: "Shipping", Duration: 2},
			{Name: "End", Duration: 0},
		},
		Dependencies: []model.Dependency{
			{From: "Start", To: "Create Work Order"},
			{From: "Create Work Order", To: "Process Rubber Blending"},
			{From: "Create Work Order", To: "Sandblast Parts"},
			{From: "Create Work Order", To: "Clean Outer & Inner Members"},
			{From: "Process Rubber Blending", To: "Mill Rubber"},
			{From: "Mill Rubber", To: "Calendar Rubber Sheets"},
			{From: "Calendar Rubber Sheets", To: "Assemble Components for Injection Molding"},
			{From: "Sandblast Parts", To: "Wash Parts for Chemical Treatment"},
			{From: "Wash Parts for Chemical Treatment", To: "Chemical Treatment Group 1"},
			{From: "Wash Parts for Chemical Treatment", To: "Chemical Treatment Group 2"},
			{From: "Wash Parts for Chemical Treatment", To: "Chemical Treatment Group 3"},
			{From: "Chemical Treatment Group 1", To: "Spray Treatment"},
			{From: "Chemical Treatment Group 2", To: "Spray Treatment"},
			{From: "Chemical Treatment Group 3", To: "Spray Treatment"},
			{From: "Spray Treatment", To: "Assemble Components for Injection Molding"},
			{From: "Clean Outer & Inner Members", To: "Special Adhesive Treatment"},
			{From: "Special Adhesive Treatment", To: "Special Sandblast"},
			{From: "Special Sandblast", To: "Wash Parts OM & IM"},
			{From: "Wash Parts OM & IM", To: "Assemble Components for Injection Molding"},
			{From: "Assemble Components for Injection Molding", To: "Injection Molding Operation"},
			{From: "Injection Molding Operation", To: "Bond Testing"},
			{From: "Bond Testing", To: "Paint & Finishing"},
			{From: "Paint & Finishing", To: "Final Inspection"},
			{From: "Final Inspection", To: "Packaging"},
			{From: "Packaging", To: "Shipping"},
			{From: "Shipping", To: "End"},
		},
	}
}
