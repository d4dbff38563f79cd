package intake

import (
	"strconv"
)

var mailingFields = map[string]string{
	"mailing_street_address": "street_address",
	"mailing_apt_unit":       "apt_unit",
	"mailing_city":           "city",
	"mailing_state":          "state",
	"mailing_zip_code":       "zip_code",
	"mailing_country":        "country",
}

// Normalize applies the record-level bookkeeping rules before a draft or
// submission is stored: mailing-address mirroring, children reconciliation
// and background-question explanations. The record is mutated in place.
func Normalize(record Record) {
	normalizeMailingAddress(record)
	reconcileChildren(record)
	ensureBackgroundExplanations(record)
}

// normalizeMailingAddress copies the physical address into the mailing
// fields when they are declared the same, and clears stale mailing values
// when they are not.
func normalizeMailingAddress(record Record) {
	switch record.Str("mailing_same_as_residence") {
	case "yes":
		for mailing, physical := range mailingFields {
			record[mailing] = record.Str(physical)
		}
	case "no":
		for mailing, physical := range mailingFields {
			if record.Str(mailing) == record.Str(physical) {
				delete(record, mailing)
			}
		}
	}
}

// reconcileChildren keeps the children array in sync with the declared
// total: extra rows are dropped, missing rows are added empty so the UI
// renders one block per declared child.
func reconcileChildren(record Record) {
	total, err := strconv.Atoi(record.Str("total_children"))
	if err != nil || total < 0 {
		return
	}

	children := record.Entries(SectionChildren)
	if len(children) > total {
		children = children[:total]
	}
	for len(children) < total {
		children = append(children, Entry{})
	}
	record.SetEntries(SectionChildren, children)
}

// ensureBackgroundExplanations adds an additional-information entry, keyed
// by part/item, for every "yes" answer whose catalog entry requires an
// explanation. Entries the applicant already wrote are left alone.
func ensureBackgroundExplanations(record Record) {
	info := record.Entries(SectionAdditionalInfo)

	keyed := make(map[string]bool, len(info))
	for _, entry := range info {
		keyed[entry["part"]+"/"+entry["item"]] = true
	}

	changed := false
	for _, question := range BackgroundQuestions {
		if !question.ExplanationRequired || !record.Is(question.ID, "yes") {
			continue
		}

		part := strconv.Itoa(question.Part)
		item := strconv.Itoa(question.Item)
		if keyed[part+"/"+item] {
			continue
		}

		info = append(info, Entry{
			"part":        part,
			"item":        item,
			"explanation": "",
		})
		keyed[part+"/"+item] = true
		changed = true
	}

	if changed {
		record.SetEntries(SectionAdditionalInfo, info)
	}
}
