// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package catalog

import (
	"github.com/AleutianAI/evomatrix/services/evolution/datatypes"
)

// technologyTree is the curated ML technology hierarchy served by
// /api/tree-data.
var technologyTree = datatypes.TreeNode{
	Name:        "ML",
	Description: "Машинное обучение - основа современных торговых систем",
	Children: []datatypes.TreeNode{
		{
			Name:        "Traditional ML",
			Description: "Классические алгоритмы машинного обучения",
			Children: []datatypes.TreeNode{
				{Name: "SVM", Description: "Метод опорных векторов для классификации"},
				{Name: "Random Forest", Description: "Ансамбль решающих деревьев"},
			},
		},
		{
			Name:        "Deep Learning",
			Description: "Глубокие нейронные сети",
			Children: []datatypes.TreeNode{
				{
					Name:        "CNN",
					Description: "Сверточные нейронные сети для анализа LOB",
					Children: []datatypes.TreeNode{
						{Name: "LOB-CNN", Description: "Специализированные CNN для анализа стакана"},
					},
				},
				{
					Name:        "RNN/LSTM",
					Description: "Рекуррентные сети для временных рядов",
					Children: []datatypes.TreeNode{
						{Name: "Attention LSTM", Description: "LSTM с механизмом внимания"},
					},
				},
				{
					Name:        "Transformers",
					Description: "Архитектура трансформеров",
					Children: []datatypes.TreeNode{
						{Name: "LOB-Transformer", Description: "Трансформеры для анализа стакана ордеров"},
						{Name: "Time-series Transformer", Description: "Специализированные трансформеры для временных рядов"},
					},
				},
			},
		},
		{
			Name:        "Reinforcement Learning",
			Description: "Обучение с подкреплением",
			Children: []datatypes.TreeNode{
				{
					Name:        "Single-Agent RL",
					Description: "Одноагентное обучение с подкреплением",
					Children: []datatypes.TreeNode{
						{Name: "DQN", Description: "Deep Q-Networks для торговых решений"},
						{Name: "PPO", Description: "Proximal Policy Optimization"},
					},
				},
				{
					Name:        "Multi-Agent RL",
					Description: "Многоагентное обучение с подкреплением",
					Children: []datatypes.TreeNode{
						{Name: "Competitive RL", Description: "Соревновательное обучение агентов"},
						{Name: "Cooperative RL", Description: "Кооперативные стратегии"},
					},
				},
				{
					Name:        "Meta-RL",
					Description: "Мета-обучение с подкреплением для быстрой адаптации",
				},
			},
		},
		{
			Name:        "Graph Neural Networks",
			Description: "Графовые нейронные сети",
			Children: []datatypes.TreeNode{
				{Name: "GNN LOB", Description: "GNN для моделирования структуры стакана"},
				{Name: "Market Graph", Description: "Графы рыночных взаимосвязей"},
			},
		},
		{
			Name:        "Hybrid Systems",
			Description: "Гибридные системы",
			Children: []datatypes.TreeNode{
				{Name: "Rules + AI", Description: "Комбинация правил и ИИ"},
				{Name: "Genetic + RL", Description: "Генетические алгоритмы с RL"},
				{Name: "Ensemble Models", Description: "Ансамбли различных моделей"},
			},
		},
	},
}

// Tree returns the ML technology hierarchy. The tree is immutable; callers
// must not mutate the returned value.
func Tree() datatypes.TreeNode {
	return technologyTree
}
