// Copyright 2022-2023 NXP
// All rights reserved.
//
// SPDX-License-Identifier: BSD-3-Clause

package machine

// Port pins of the MCXA153. Bits a package does not bond out are skipped.
const (
	P0_0 Pin = iota
	P0_1
	P0_2
	P0_3
	P0_4
	P0_5
	P0_6
	P0_7
	_
	_
	_
	_
	_
	_
	_
	_
	P0_16
	P0_17
	_
	_
	P0_20
	P0_21
	P0_22
	P0_23
)

const (
	P1_0 Pin = iota + 32
	P1_1
	P1_2
	P1_3
	P1_4
	P1_5
	P1_6
	P1_7
	P1_8
	P1_9
	P1_10
	P1_11
	P1_12
	P1_13
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	_
	P1_29
	P1_30
	P1_31
)

const (
	P2_0 Pin = iota + 64
	P2_1
	P2_2
	P2_3
	P2_4
	P2_5
	P2_6
	P2_7
	_
	_
	_
	_
	P2_12
	P2_13
	_
	_
	P2_16
	P2_17
	_
	_
	P2_20
	P2_21
	P2_22
	P2_23
)

const (
	P3_0 Pin = iota + 96
	P3_1
	P3_2
	P3_3
	P3_4
	P3_5
	P3_6
	P3_7
	P3_8
	P3_9
	P3_10
	P3_11
	P3_12
	P3_13
	P3_14
	P3_15
	P3_16
	P3_17
	P3_18
	P3_19
	P3_20
	P3_21
	P3_22
	P3_23
	P3_24
	P3_25
	P3_26
	P3_27
	P3_28
	P3_29
	P3_30
	P3_31
)
