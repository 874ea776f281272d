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

const randomForestScalperCode = `
# Основной код Random Forest Scalper
import ccxt
import pandas as pd
import numpy as np
from sklearn.ensemble import RandomForestClassifier
from sklearn.model_selection import train_test_split
from sklearn.metrics import classification_report

# Получение данных
exchange = ccxt.binance()
ohlcv = exchange.fetch_ohlcv('BTC/USDT', '1m', limit=1000)
df = pd.DataFrame(ohlcv, columns=['timestamp','open','high','low','close','volume'])

# Feature engineering
df['return'] = df['close'].pct_change()
df['volatility'] = df['return'].rolling(5).std()
df['sma5'] = df['close'].rolling(5).mean()
df['sma20'] = df['close'].rolling(20).mean()
df['sma_diff'] = df['sma5'] - df['sma20']

# Target
df['target'] = (df['close'].shift(-1) > df['close']).astype(int)

# Обучение модели
X = df[['return','volatility','sma5','sma20','sma_diff']]
y = df['target']
X_train, X_test, y_train, y_test = train_test_split(X, y, test_size=0.2, shuffle=False)

model = RandomForestClassifier(n_estimators=100, random_state=42)
model.fit(X_train, y_train)
`

const ppoScalperCode = `
# PPO RL Scalper — код-скелет
import ccxt
import pandas as pd
import gym
import gym_anytrading
from gym_anytrading.envs import StocksEnv
from stable_baselines3 import PPO
import matplotlib.pyplot as plt

exchange = ccxt.binance()
ohlcv = exchange.fetch_ohlcv('BTC/USDT', '1m', limit=1000)
df = pd.DataFrame(ohlcv, columns=['timestamp','open','high','low','close','volume'])
df['timestamp'] = pd.to_datetime(df['timestamp'], unit='ms')
df.set_index('timestamp', inplace=True)

class CustomEnv(StocksEnv):
    _process_data = StocksEnv._process_data
    _calculate_reward = StocksEnv._calculate_reward
    _take_action = StocksEnv._take_action

env = CustomEnv(df=df, window_size=30, frame_bound=(30, len(df)))
model = PPO('MlpPolicy', env, verbose=1)
model.learn(total_timesteps=10000)

obs = env.reset()
while True:
    action, _ = model.predict(obs)
    obs, reward, done, info = env.step(action)
    if done:
        print('Total reward:', info)
        break

plt.figure(figsize=(15,6))
env.render_all()
plt.show()
`

// seedCases returns fresh copies of the curated case studies.
func seedCases() []datatypes.TradingMachine {
	return []datatypes.TradingMachine{
		{
			ID:          "random-forest-scalper-2015",
			Name:        "Random Forest Scalper",
			Period:      "2015-2017",
			Author:      "Chan et al.",
			Description: "Простая торговая машина для скальпинга на основе Random Forest",
			Strategy:    "Скальпинг с предсказанием направления движения цены",
			Timeframe:   "1 минута",
			MarketType:  "Криптовалюты (BTC/USDT)",
			Technologies: []datatypes.TechnologyStack{
				{Name: "ccxt", Version: "1.x", Purpose: "Подключение к Binance API для получения OHLCV данных", Category: "data"},
				{Name: "pandas", Purpose: "Работа с временными рядами и создание DataFrame", Category: "processing"},
				{Name: "numpy", Purpose: "Быстрые математические операции и создание признаков", Category: "processing"},
				{Name: "scikit-learn", Purpose: "RandomForestClassifier и метрики качества", Category: "ml"},
				{Name: "matplotlib", Purpose: "Визуализация сигналов и графиков цены", Category: "visualization"},
			},
			Modules: datatypes.CaseModules{
				DataCollection: []string{"Binance API", "CCXT", "OHLCV данные"},
				DataProcessing: []string{"pandas DataFrame", "временные ряды"},
				FeatureEngineering: []string{
					"return (pct_change)",
					"volatility (rolling std)",
					"SMA5",
					"SMA20",
					"sma_diff",
				},
				SignalGeneration: []string{"RandomForestClassifier", "n_estimators=100"},
				RiskManagement:   []string{"Простые BUY/SELL сигналы"},
				Execution:        []string{"Дискретные торговые сигналы"},
				MarketAdaptation: []string{"train_test_split", "переодическое переобучение"},
				Visualization:    []string{"matplotlib графики", "цена + точки сигналов"},
			},
			Performance: &datatypes.Performance{
				Accuracy:  0.55,
				Precision: 0.52,
				Recall:    0.58,
				F1Score:   0.55,
			},
			CodeExample: randomForestScalperCode,
			Advantages: []string{
				"Простая реализация и понимание",
				"Быстрое обучение модели",
				"Работает на минутных данных",
				"Хорошая отправная точка для скальпинга",
				"Интерпретируемые признаки",
			},
			Disadvantages: []string{
				"Требует регулярного переобучения",
				"Не учитывает глубину рынка",
				"Чувствителен к внезапным новостям",
				"Простые признаки могут быть недостаточными",
				"Отсутствие управления рисками",
			},
		},
		{
			ID:          "rl-ppo-scalper-2020",
			Name:        "RL Scalper (PPO Agent)",
			Period:      "2020+",
			Author:      "Open-source demos, arXiv, courses",
			Description: "Современная торговая машина со скальпингом на Reinforcement Learning (PPO). Агент учится максимизировать прибыль, работает в backtest и live, учитывает комиссии и риски.",
			Strategy:    "Reinforcement Learning (PPO): BUY/SELL/HOLD",
			Timeframe:   "1 минута",
			MarketType:  "Криптовалюты (BTC/USDT)",
			Technologies: []datatypes.TechnologyStack{
				{Name: "ccxt", Purpose: "Сбор исторических данных (REST)", Category: "data"},
				{Name: "ccxt.pro", Purpose: "Live-данные через WebSocket", Category: "data"},
				{Name: "pandas", Purpose: "Обработка временных рядов", Category: "processing"},
				{Name: "numpy", Purpose: "Численные расчёты", Category: "processing"},
				{Name: "gym-anytrading", Purpose: "RL-среда для трейдинга", Category: "ml"},
				{Name: "stable-baselines3", Purpose: "RL-алгоритмы (PPO, MlpPolicy)", Category: "ml"},
				{Name: "matplotlib", Purpose: "Визуализация результатов/сделок", Category: "visualization"},
			},
			Modules: datatypes.CaseModules{
				DataCollection: []string{"Binance API", "CCXT", "CCXT.pro", "OHLCV"},
				DataProcessing: []string{
					"Индекс timestamp",
					"float64 типы",
					"Очистка NaN",
					"Фильтр выбросов",
					"Нормализация",
				},
				FeatureEngineering: []string{"Окно последних N свечей", "RSI (опционально)", "EMA (опционально)"},
				SignalGeneration:   []string{"PPO (Stable-Baselines3)", "MlpPolicy", "Gym-anytrading среда"},
				RiskManagement: []string{
					"Учёт комиссий 0.1%",
					"TP/SL (через правила/награду)",
					"Штраф за просадку (reward)",
				},
				Execution:        []string{"create_market_order", "WebSocket streaming", "Рыночные ордера"},
				MarketAdaptation: []string{"Переобучение агента", "Тюнинг гиперпараметров", "Transfer learning"},
				Visualization:    []string{"matplotlib", "Сделки поверх цены"},
			},
			CodeExample: ppoScalperCode,
			Advantages: []string{
				"Не нужны размеченные данные",
				"Агент учится напрямую на прибыли",
				"Современный RL‑алгоритм (PPO)",
				"Гибкая настройка награды и наблюдений",
			},
			Disadvantages: []string{
				"Длительное обучение",
				"Риск переобучения (нужны разные периоды)",
				"Требуется тюнинг гиперпараметров",
			},
		},
	}
}
