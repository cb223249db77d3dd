package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// Action é um contador de eventos nomeado anexado a uma linha de insights
// (ex.: lead, link_click). A API retorna o valor como string.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// LeadActionTypes são os action_types que a API usa como sinônimos de "lead".
// A ordem de varredura é a ordem da lista de actions, não desta lista.
var LeadActionTypes = []string{
	"lead",
	"onsite_conversion.lead_grouped",
	"offsite_conversion.fb_pixel_lead",
}

// LinkClickActionTypes são os action_types equivalentes a cliques no link.
var LinkClickActionTypes = []string{"link_click"}

// ActionValue retorna o valor inteiro da primeira action (na ordem de entrada)
// cujo action_type pertence ao conjunto de aliases. Lista vazia ou nenhuma
// correspondência retornam 0.
func ActionValue(actions []Action, aliases []string) int {
	for i := range actions {
		action := actions[i]

		for _, alias := range aliases {
			if action.ActionType != alias {
				continue
			}

			value, err := strconv.Atoi(action.Value)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"action_type":  action.ActionType,
					"action_value": action.Value,
					"error":        err.Error(),
				}).Warn("insights: error converting action value to integer")
			}

			return value
		}
	}

	return 0
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// InsightRow é uma linha de métricas retornada pela API de insights, no nível
// de conta, campanha ou dia conforme os parâmetros da consulta. Campos
// numéricos chegam como strings.
type InsightRow struct {
	AccountID    string   `json:"account_id"`
	AccountName  string   `json:"account_name"`
	Actions      []Action `json:"actions"`
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	Clicks       string   `json:"clicks"`
	CPC          string   `json:"cpc"`
	CPM          string   `json:"cpm"`
	CTR          string   `json:"ctr"`
	DateStart    string   `json:"date_start"`
	Impressions  string   `json:"impressions"`
	Reach        string   `json:"reach"`
	Spend        string   `json:"spend"`
}

// Leads extrai a quantidade de leads das actions da linha.
func (r *InsightRow) Leads() int {
	return ActionValue(r.Actions, LeadActionTypes)
}

// LinkClicks extrai os cliques no link das actions da linha.
func (r *InsightRow) LinkClicks() int {
	return ActionValue(r.Actions, LinkClickActionTypes)
}

func (r *InsightRow) SpendValue() float64 {
	return parseFloat(r.Spend, "spend")
}

func (r *InsightRow) ImpressionsValue() int {
	return parseInt(r.Impressions, "impressions")
}

func (r *InsightRow) ReachValue() int {
	return parseInt(r.Reach, "reach")
}

func (r *InsightRow) ClicksValue() int {
	return parseInt(r.Clicks, "clicks")
}

func (r *InsightRow) CPMValue() float64 {
	return parseFloat(r.CPM, "cpm")
}

func (r *InsightRow) CTRValue() float64 {
	return parseFloat(r.CTR, "ctr")
}

func (r *InsightRow) CPCValue() float64 {
	return parseFloat(r.CPC, "cpc")
}

// parseFloat converte um campo numérico da API, tratando ausência como zero.
func parseFloat(value, field string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting field to float")
		return 0
	}

	return parsed
}

func parseInt(value, field string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting field to integer")
		return 0
	}

	return parsed
}
