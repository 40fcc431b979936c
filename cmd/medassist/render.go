package main

import (
	"fmt"

	"github.com/adi-1505/medassist/core"
)

func printBundle(bundle *core.ResponseBundle) {
	if bundle.Message != "" {
		fmt.Println(bundle.Message)
		fmt.Println()
		fmt.Println("Suggestions:")
		printList(bundle.Suggestions)
		fmt.Println()
		fmt.Println(bundle.Disclaimer)
		return
	}

	if bundle.Emergency != nil {
		fmt.Printf("!!! %s\n", bundle.Emergency.Message)
		printList(bundle.Emergency.Contacts)
		fmt.Println()
	}

	fmt.Println("Most relevant results:")
	for i, result := range bundle.Primary {
		fmt.Printf("\n%d. %s (%s, score %.1f, relevance %s)\n",
			i+1, result.Title(), result.Type, result.Score, result.Relevance)
		printResultDetail(result)
	}

	if len(bundle.Secondary) > 0 {
		fmt.Println("\nAdditional results:")
		for _, result := range bundle.Secondary {
			fmt.Printf("  - %s (%s, score %.1f)\n", result.Title(), result.Type, result.Score)
		}
	}

	printSection("Related information", bundle.RelatedInformation)
	printSection("Recommendations", bundle.Recommendations)
	printSection("When to seek medical help", bundle.WhenToSeekHelp)

	if len(bundle.Interactions) > 0 {
		fmt.Println("\nMedication interaction warnings:")
		for _, record := range bundle.Interactions {
			fmt.Printf("  - %s: %s + %s (%s)\n",
				record.Severity, record.Primary, record.Partner, record.Mechanism)
		}
	}

	fmt.Println()
	fmt.Println(bundle.Disclaimer)
	printSection("Sources", bundle.Sources)
}

func printResultDetail(result *core.SearchResult) {
	switch result.Type {
	case core.EntityCondition:
		condition := result.Condition
		fmt.Printf("   ICD-10: %s | Severity: %s | Prevalence: %s\n",
			condition.ICD10Code, condition.Severity, condition.Prevalence)
		printField("Symptoms", head(condition.Symptoms, 5))
		printField("Treatments", head(condition.Treatments, 4))
		printField("Risk factors", head(condition.RiskFactors, 4))
		printField("Prevention", head(condition.Prevention, 3))
	case core.EntityDrug:
		drug := result.Drug
		fmt.Printf("   Generic: %s | Class: %s | Dosage: %s | Pregnancy category: %s\n",
			drug.GenericName, drug.DrugClass, drug.Dosage, drug.PregnancyCategory)
		printField("Indications", drug.Indications)
		printField("Side effects", head(drug.SideEffects, 4))
		printField("Contraindications", head(drug.Contraindications, 4))
		printField("Monitoring", drug.Monitoring)
	case core.EntitySymptom:
		symptom := result.Symptom
		printField("Possible conditions", symptom.PossibleConditions)
		printField("When to seek help", symptom.WhenToSeekHelp)
		printField("Self-care", symptom.SelfCare)
	}
}

func printSection(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	printList(items)
}

func printField(name string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("   %s:\n", name)
	for _, item := range items {
		fmt.Printf("     - %s\n", item)
	}
}

func printList(items []string) {
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

func head(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}
