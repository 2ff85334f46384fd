package report

import (
	"fmt"
	"strings"
)

func asObject(value any) map[string]any {
	if obj, ok := value.(map[string]any); ok {
		return obj
	}
	return map[string]any{}
}

func stringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func levelString(value any, fallback string) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%d", int(v))
	}
	return fallback
}

func pick(items []string, i int, fallback string) string {
	if i < len(items) && items[i] != "" {
		return items[i]
	}
	return fallback
}

// BuildB2CFallback synthesizes the deterministic consumer-market report from
// the scored input and derived analytics. It is parameterized only by the
// top-2/bottom-2 anchors and the relationship levels, and must always
// validate against the B2C schema; a failure there is a contract defect.
func BuildB2CFallback(input, derived map[string]any) map[string]any {
	rank := stringSlice(derived["anchor_rank"])
	top := rank
	if len(top) > 2 {
		top = top[:2]
	}
	bottom := stringSlice(derived["bottom_anchors"])
	if len(bottom) > 2 {
		bottom = bottom[:2]
	}

	identityAnchors := strings.Join(top, "/")
	if identityAnchors == "" {
		identityAnchors = "핵심 앵커"
	}

	relationship := asObject(input["relationship_map"])
	currentLevel := levelString(relationship["current_level"], "1")
	desiredLevel := levelString(relationship["desired_level"], "")
	if desiredLevel == "" {
		desiredLevel = levelString(relationship["current_level"], "2")
	}

	return map[string]any{
		"strategic_overview": map[string]any{
			"one_sentence_identity": fmt.Sprintf("당신은 %s를 중심으로 의미와 성장을 추구하는 사람입니다.", identityAnchors),
			"sea_anchor_metaphor":   "파도가 강할수록 닻의 각도를 조정해 항로를 유지하는 선장처럼, 상황 변화에 맞춰 강점을 재배치하는 전략이 필요합니다.",
			"so_what": []any{
				"상위 앵커가 충족되는 역할에서 몰입과 성과가 함께 올라갑니다.",
				"하위 앵커가 자주 요구되는 환경에서는 에너지 소모가 빨라질 수 있습니다.",
				"향후 90일은 강점 유지와 리스크 완화 루틴을 동시에 설계하는 것이 핵심입니다.",
			},
		},
		"tradeoffs": []any{
			map[string]any{
				"title":       fmt.Sprintf("%s vs %s", pick(top, 0, "상위 앵커"), pick(bottom, 0, "하위 앵커")),
				"description": "강점을 밀어붙일수록 반대 축의 요구를 소홀히 할 위험이 있습니다.",
				"action":      "주 1회 의사결정 로그를 남겨 편향을 점검하세요.",
			},
			map[string]any{
				"title":       fmt.Sprintf("%s와 실행 현실성", pick(top, 1, "두 번째 앵커")),
				"description": "좋은 방향이라도 실행 단위가 크면 지연됩니다.",
				"action":      "2주 단위의 작은 실험으로 검증 속도를 높이세요.",
			},
		},
		"relationship_dynamics": map[string]any{
			"current_level": currentLevel,
			"desired_level": desiredLevel,
			"scripts": []any{
				"이번 분기에는 제 강점이 가장 잘 발휘되는 과제를 우선순위로 정렬하고 싶습니다.",
				"현재 역할은 유지하되, 성장 목표와 맞는 책임을 단계적으로 확대하고 싶습니다.",
			},
		},
		"vucca_risk_map": []any{
			map[string]any{"dimension": "Volatility", "risk": "우선순위 급변으로 집중이 분산됨", "mitigation": "주간 Top 3 목표를 고정하고 변경은 주 1회만 반영"},
			map[string]any{"dimension": "Uncertainty", "risk": "정보 부족으로 의사결정 지연", "mitigation": "결정 전제와 가설을 문서화해 빠르게 업데이트"},
			map[string]any{"dimension": "Complexity", "risk": "이해관계자 증가로 실행 속도 저하", "mitigation": "의사결정권자/리뷰어를 명확히 분리"},
			map[string]any{"dimension": "Ambiguity", "risk": "성공 기준 불명확", "mitigation": "완료 기준(Definition of Done)을 먼저 합의"},
			map[string]any{"dimension": "Anxiety", "risk": "심리적 압박으로 회피 행동 증가", "mitigation": "매일 10분 회고로 감정-행동 연결을 점검"},
		},
		"energy_pattern": map[string]any{
			"gains":          []any{"강점과 맞는 과제의 자율적 추진", "명확한 기대치와 빠른 피드백"},
			"drains":         []any{"반복적 보고 중심 업무", "의미 연결이 약한 단기 업무 누적"},
			"micro_recovery": []any{"점심 전후 10분 산책", "업무 종료 전 3줄 회고"},
		},
		"decision_simulation": []any{
			map[string]any{"path": "stay", "fit": "현재 조직 맥락을 활용 가능", "risk": "역할 변화 폭이 제한될 수 있음", "upside": "리스크 낮게 성과 축적", "first_step": "상사와 90일 역할 조정 미팅"},
			map[string]any{"path": "move_similar", "fit": "유사 직무로 강점 이식 용이", "risk": "환경 적응 비용 발생", "upside": "보상/성장 곡선 개선 가능", "first_step": "타깃 포지션 5개 정보 인터뷰"},
			map[string]any{"path": "pivot", "fit": "장기 의미와 학습 욕구 충족", "risk": "초기 불확실성 높음", "upside": "커리어 정체 해소", "first_step": "4주 파일럿 프로젝트 설계"},
		},
		"plan_90d": map[string]any{
			"D30": map[string]any{
				"focus":   "현재 역할에서 강점 사용률을 높이는 정렬",
				"actions": []any{"주간 핵심업무 재정의", "비핵심 업무 위임/축소 협의"},
				"metrics": []any{"강점 활용 체감도 주간 1회 기록", "핵심업무 비중 10%p 상승"},
			},
			"D60": map[string]any{
				"focus":   "성장 시나리오 검증",
				"actions": []any{"의사결정 시나리오 3안 비교", "외부 멘토 2명 피드백 수집"},
				"metrics": []any{"시나리오별 리스크/보상 점수화", "의사결정 지연일수 감소"},
			},
			"D90": map[string]any{
				"focus":   "선택안 실행 전환",
				"actions": []any{"선택안 실행 로드맵 확정", "관계자 커뮤니케이션 실행"},
				"metrics": []any{"첫 실행 마일스톤 달성", "주관적 소진도 감소"},
			},
		},
		"reflection_questions": []any{
			"최근 2주간 가장 에너지가 올라간 순간은 언제였나요?",
			"현재 선택이 6개월 후의 나에게 어떤 기회를 열어주나요?",
			"불안을 줄이기 위해 이번 주에 할 수 있는 가장 작은 행동은 무엇인가요?",
		},
		"disclaimer": "이 리포트는 자기이해와 커리어 의사결정을 돕기 위한 참고자료이며, 의학적/심리학적 진단이 아닙니다.",
	}
}
